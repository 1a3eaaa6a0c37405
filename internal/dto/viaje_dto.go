package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type ComidaRequest struct {
	GuiaComida  string  `json:"guia_comida"  validate:"max=50"`
	Descripcion string  `json:"descripcion"  validate:"max=200"`
	Kilo        Decimal `json:"kilo"`
	Bultos      Entero  `json:"bultos"`
	Proveedor   string  `json:"proveedor"    validate:"max=100"`
}

// ViajeRequest carries every field of the dispatch form for one
// (numero_viaje, centro_costo). On update the key comes from the URL.
type ViajeRequest struct {
	NumeroViaje string `json:"numero_viaje" validate:"required,max=30"`
	CentroCosto string `json:"centro_costo" validate:"required,max=20"`

	Casino         string `json:"casino"          validate:"max=100"`
	Ruta           string `json:"ruta"            validate:"max=100"`
	TipoCamion     string `json:"tipo_camion"     validate:"max=50"`
	PatenteCamion  string `json:"patente_camion"  validate:"max=20"`
	PatenteSemi    string `json:"patente_semi"    validate:"max=20"`
	NumeroRampa    string `json:"numero_rampa"    validate:"max=20"`
	PesoCamion     string `json:"peso_camion"     validate:"max=20"`
	TermografosGPS string `json:"termografos_gps" validate:"max=50"`
	NumeroCamion   string `json:"numero_camion"   validate:"max=20"`

	Fecha               string `json:"fecha"                  validate:"omitempty,datetime=2006-01-02"`
	FechaHoraLlegadaDHL string `json:"fecha_hora_llegada_dhl" validate:"max=30"`
	FechaHoraSalidaDHL  string `json:"fecha_hora_salida_dhl"  validate:"max=30"`

	Conductor string `json:"conductor" validate:"max=100"`
	Celular   string `json:"celular"   validate:"max=30"`
	RUT       string `json:"rut"       validate:"max=20"`

	NumWencos                 Entero `json:"num_wencos"`
	Bin                       Entero `json:"bin"`
	Pallets                   Entero `json:"pallets"`
	PalletsChep               Entero `json:"pallets_chep"`
	PalletsPlNegroGrueso      Entero `json:"pallets_pl_negro_grueso"`
	PalletsPlNegroAlternativo Entero `json:"pallets_pl_negro_alternativo"`
	PalletsRefrigerado        Entero `json:"pallets_refrigerado"`
	WencosRefrigerado         Entero `json:"wencos_refrigerado"`
	PalletsCongelado          Entero `json:"pallets_congelado"`
	WencosCongelado           Entero `json:"wencos_congelado"`
	PalletsAbarrote           Entero `json:"pallets_abarrote"`

	CheckCongelado                Marca `json:"check_congelado"`
	CheckRefrigerado              Marca `json:"check_refrigerado"`
	CheckAbarrote                 Marca `json:"check_abarrote"`
	CheckImplementos              Marca `json:"check_implementos"`
	CheckAseo                     Marca `json:"check_aseo"`
	CheckTrazabilidad             Marca `json:"check_trazabilidad"`
	CheckPlataformaWTCK           Marca `json:"check_plataforma_wtck"`
	CheckEnvCorreoWTCK            Marca `json:"check_env_correo_wtck"`
	CheckRevisionPlanillaDespacho Marca `json:"check_revision_planilla_despacho"`

	SellosSalida  []string `json:"sellos_salida"  validate:"max=5,dive,max=30"`
	SellosRetorno []string `json:"sellos_retorno" validate:"max=5,dive,max=30"`
	Guias         []string `json:"guias"          validate:"max=21,dive,max=30"`

	NumeroCertificadoFumigacion    string `json:"numero_certificado_fumigacion"     validate:"max=50"`
	RevisionLimpiezaCamionAcciones string `json:"revision_limpieza_camion_acciones" validate:"max=300"`
	AdministrativoResponsable      string `json:"administrativo_responsable"        validate:"max=100"`

	Comidas []ComidaRequest `json:"comidas" validate:"dive"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ComidaResponse struct {
	ID          uint    `json:"id"`
	GuiaComida  string  `json:"guia_comida"`
	Descripcion string  `json:"descripcion"`
	Kilo        Decimal `json:"kilo"`
	Bultos      int     `json:"bultos"`
	Proveedor   string  `json:"proveedor"`
}

type ViajeResponse struct {
	ID          uint   `json:"id"`
	NumeroViaje string `json:"numero_viaje"`
	CentroCosto string `json:"centro_costo"`

	Casino         string `json:"casino"`
	Ruta           string `json:"ruta"`
	TipoCamion     string `json:"tipo_camion"`
	PatenteCamion  string `json:"patente_camion"`
	PatenteSemi    string `json:"patente_semi"`
	NumeroRampa    string `json:"numero_rampa"`
	PesoCamion     string `json:"peso_camion"`
	TermografosGPS string `json:"termografos_gps"`
	NumeroCamion   string `json:"numero_camion"`

	Fecha               string `json:"fecha"`
	FechaHoraLlegadaDHL string `json:"fecha_hora_llegada_dhl"`
	FechaHoraSalidaDHL  string `json:"fecha_hora_salida_dhl"`

	Conductor string `json:"conductor"`
	Celular   string `json:"celular"`
	RUT       string `json:"rut"`

	NumWencos                 int `json:"num_wencos"`
	Bin                       int `json:"bin"`
	Pallets                   int `json:"pallets"`
	PalletsChep               int `json:"pallets_chep"`
	PalletsPlNegroGrueso      int `json:"pallets_pl_negro_grueso"`
	PalletsPlNegroAlternativo int `json:"pallets_pl_negro_alternativo"`
	PalletsRefrigerado        int `json:"pallets_refrigerado"`
	WencosRefrigerado         int `json:"wencos_refrigerado"`
	PalletsCongelado          int `json:"pallets_congelado"`
	WencosCongelado           int `json:"wencos_congelado"`
	PalletsAbarrote           int `json:"pallets_abarrote"`

	CheckCongelado                string `json:"check_congelado"`
	CheckRefrigerado              string `json:"check_refrigerado"`
	CheckAbarrote                 string `json:"check_abarrote"`
	CheckImplementos              string `json:"check_implementos"`
	CheckAseo                     string `json:"check_aseo"`
	CheckTrazabilidad             string `json:"check_trazabilidad"`
	CheckPlataformaWTCK           string `json:"check_plataforma_wtck"`
	CheckEnvCorreoWTCK            string `json:"check_env_correo_wtck"`
	CheckRevisionPlanillaDespacho string `json:"check_revision_planilla_despacho"`

	SellosSalida  []string `json:"sellos_salida"`
	SellosRetorno []string `json:"sellos_retorno"`
	Guias         []string `json:"guias"`

	NumeroCertificadoFumigacion    string `json:"numero_certificado_fumigacion"`
	RevisionLimpiezaCamionAcciones string `json:"revision_limpieza_camion_acciones"`
	AdministrativoResponsable      string `json:"administrativo_responsable"`

	Comidas []ComidaResponse `json:"comidas"`
}

// CentroViajeResponse is one cost center recorded for a trip number.
type CentroViajeResponse struct {
	Codigo string `json:"codigo"`
	Casino string `json:"casino"`
	Ruta   string `json:"ruta"`
}

type ViajeUnicoResponse struct {
	NumeroViaje string `json:"numero_viaje"`
	Conductor   string `json:"conductor"`
	Fecha       string `json:"fecha"`
	Centros     int    `json:"centros"`
}

type ViajeResumenResponse struct {
	NumeroViaje  string `json:"numero_viaje"`
	CentroCosto  string `json:"centro_costo"`
	Casino       string `json:"casino"`
	Fecha        string `json:"fecha"`
	Conductor    string `json:"conductor"`
	TotalComidas int    `json:"total_comidas"`
}

type EstadisticasResponse struct {
	TotalRegistros    int64 `json:"total_registros"`
	ViajesUnicos      int64 `json:"viajes_unicos"`
	ViajesMultiCentro int64 `json:"viajes_multi_centro"`
}

// ArchivoResponse points at a generated file that can be downloaded.
type ArchivoResponse struct {
	Archivo string `json:"archivo"`
	URL     string `json:"url"`
	Paginas int    `json:"paginas,omitempty"`
}

type EnviarPlanillaRequest struct {
	Destinatario string `json:"destinatario" validate:"omitempty,email"`
}

// ReporteQuery bounds a report. Fecha alone means a single day.
type ReporteQuery struct {
	FechaInicio string `form:"fecha_inicio"`
	FechaFin    string `form:"fecha_fin"`
	Fecha       string `form:"fecha"`
}
