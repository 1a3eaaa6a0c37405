package model

import "time"

// MarcaCheck is the only stored value that counts as a checked box.
const MarcaCheck = "X"

const (
	MaxGuias  = 21
	MaxSellos = 5
)

// Viaje is one row per (NumeroViaje, CostoCodigo). A physical trip that serves
// several cost centers is stored as several rows sharing NumeroViaje.
type Viaje struct {
	ID          uint   `gorm:"column:id;primaryKey;autoIncrement"`
	NumeroViaje string `gorm:"column:numero_viaje;not null"`
	CostoCodigo string `gorm:"column:costo_codigo;not null"`

	Casino         string `gorm:"column:casino"`
	Ruta           string `gorm:"column:ruta"`
	TipoCamion     string `gorm:"column:tipo_camion"`
	PatenteCamion  string `gorm:"column:patente_camion"`
	PatenteSemi    string `gorm:"column:patente_semi"`
	NumeroRampa    string `gorm:"column:numero_rampa"`
	PesoCamion     string `gorm:"column:peso_camion"`
	TermografosGPS string `gorm:"column:termografos_gps"`
	NumeroCamion   string `gorm:"column:numero_camion"`

	Fecha               string `gorm:"column:fecha"` // YYYY-MM-DD
	FechaHoraLlegadaDHL string `gorm:"column:fecha_hora_llegada_dhl"`
	FechaHoraSalidaDHL  string `gorm:"column:fecha_hora_salida_dhl"`

	Conductor string `gorm:"column:conductor"`
	Celular   string `gorm:"column:celular"`
	RUT       string `gorm:"column:rut"`

	NumWencos                 int `gorm:"column:num_wencos;not null;default:0"`
	Bin                       int `gorm:"column:bin;not null;default:0"`
	Pallets                   int `gorm:"column:pallets;not null;default:0"`
	PalletsChep               int `gorm:"column:pallets_chep;not null;default:0"`
	PalletsPlNegroGrueso      int `gorm:"column:pallets_pl_negro_grueso;not null;default:0"`
	PalletsPlNegroAlternativo int `gorm:"column:pallets_pl_negro_alternativo;not null;default:0"`
	PalletsRefrigerado        int `gorm:"column:pallets_refrigerado;not null;default:0"`
	WencosRefrigerado         int `gorm:"column:wencos_refrigerado;not null;default:0"`
	PalletsCongelado          int `gorm:"column:pallets_congelado;not null;default:0"`
	WencosCongelado           int `gorm:"column:wencos_congelado;not null;default:0"`
	PalletsAbarrote           int `gorm:"column:pallets_abarrote;not null;default:0"`

	CheckCongelado                string `gorm:"column:check_congelado"`
	CheckRefrigerado              string `gorm:"column:check_refrigerado"`
	CheckAbarrote                 string `gorm:"column:check_abarrote"`
	CheckImplementos              string `gorm:"column:check_implementos"`
	CheckAseo                     string `gorm:"column:check_aseo"`
	CheckTrazabilidad             string `gorm:"column:check_trazabilidad"`
	CheckPlataformaWTCK           string `gorm:"column:check_plataforma_wtck"`
	CheckEnvCorreoWTCK            string `gorm:"column:check_env_correo_wtck"`
	CheckRevisionPlanillaDespacho string `gorm:"column:check_revision_planilla_despacho"`

	SelloSalida1P  string `gorm:"column:sello_salida_1p"`
	SelloSalida2P  string `gorm:"column:sello_salida_2p"`
	SelloSalida3P  string `gorm:"column:sello_salida_3p"`
	SelloSalida4P  string `gorm:"column:sello_salida_4p"`
	SelloSalida5P  string `gorm:"column:sello_salida_5p"`
	SelloRetorno1P string `gorm:"column:sello_retorno_1p"`
	SelloRetorno2P string `gorm:"column:sello_retorno_2p"`
	SelloRetorno3P string `gorm:"column:sello_retorno_3p"`
	SelloRetorno4P string `gorm:"column:sello_retorno_4p"`
	SelloRetorno5P string `gorm:"column:sello_retorno_5p"`

	Guia1  string `gorm:"column:guia_1"`
	Guia2  string `gorm:"column:guia_2"`
	Guia3  string `gorm:"column:guia_3"`
	Guia4  string `gorm:"column:guia_4"`
	Guia5  string `gorm:"column:guia_5"`
	Guia6  string `gorm:"column:guia_6"`
	Guia7  string `gorm:"column:guia_7"`
	Guia8  string `gorm:"column:guia_8"`
	Guia9  string `gorm:"column:guia_9"`
	Guia10 string `gorm:"column:guia_10"`
	Guia11 string `gorm:"column:guia_11"`
	Guia12 string `gorm:"column:guia_12"`
	Guia13 string `gorm:"column:guia_13"`
	Guia14 string `gorm:"column:guia_14"`
	Guia15 string `gorm:"column:guia_15"`
	Guia16 string `gorm:"column:guia_16"`
	Guia17 string `gorm:"column:guia_17"`
	Guia18 string `gorm:"column:guia_18"`
	Guia19 string `gorm:"column:guia_19"`
	Guia20 string `gorm:"column:guia_20"`
	Guia21 string `gorm:"column:guia_21"`

	NumeroCertificadoFumigacion    string `gorm:"column:numero_certificado_fumigacion"`
	RevisionLimpiezaCamionAcciones string `gorm:"column:revision_limpieza_camion_acciones"`
	AdministrativoResponsable      string `gorm:"column:administrativo_responsable"`

	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`

	Comidas []ComidaPreparada `gorm:"-"`
}

func (Viaje) TableName() string { return "viajes" }

// Guias returns the 21 guide slots in order.
func (v *Viaje) Guias() [MaxGuias]string {
	return [MaxGuias]string{
		v.Guia1, v.Guia2, v.Guia3, v.Guia4, v.Guia5, v.Guia6, v.Guia7,
		v.Guia8, v.Guia9, v.Guia10, v.Guia11, v.Guia12, v.Guia13, v.Guia14,
		v.Guia15, v.Guia16, v.Guia17, v.Guia18, v.Guia19, v.Guia20, v.Guia21,
	}
}

// SetGuias fills the guide slots from g; missing positions are cleared.
func (v *Viaje) SetGuias(g []string) {
	var a [MaxGuias]string
	copy(a[:], g)
	v.Guia1, v.Guia2, v.Guia3, v.Guia4, v.Guia5, v.Guia6, v.Guia7 = a[0], a[1], a[2], a[3], a[4], a[5], a[6]
	v.Guia8, v.Guia9, v.Guia10, v.Guia11, v.Guia12, v.Guia13, v.Guia14 = a[7], a[8], a[9], a[10], a[11], a[12], a[13]
	v.Guia15, v.Guia16, v.Guia17, v.Guia18, v.Guia19, v.Guia20, v.Guia21 = a[14], a[15], a[16], a[17], a[18], a[19], a[20]
}

func (v *Viaje) SellosSalida() [MaxSellos]string {
	return [MaxSellos]string{v.SelloSalida1P, v.SelloSalida2P, v.SelloSalida3P, v.SelloSalida4P, v.SelloSalida5P}
}

func (v *Viaje) SellosRetorno() [MaxSellos]string {
	return [MaxSellos]string{v.SelloRetorno1P, v.SelloRetorno2P, v.SelloRetorno3P, v.SelloRetorno4P, v.SelloRetorno5P}
}

func (v *Viaje) SetSellosSalida(s []string) {
	var a [MaxSellos]string
	copy(a[:], s)
	v.SelloSalida1P, v.SelloSalida2P, v.SelloSalida3P, v.SelloSalida4P, v.SelloSalida5P = a[0], a[1], a[2], a[3], a[4]
}

func (v *Viaje) SetSellosRetorno(s []string) {
	var a [MaxSellos]string
	copy(a[:], s)
	v.SelloRetorno1P, v.SelloRetorno2P, v.SelloRetorno3P, v.SelloRetorno4P, v.SelloRetorno5P = a[0], a[1], a[2], a[3], a[4]
}
