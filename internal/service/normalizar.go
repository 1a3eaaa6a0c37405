package service

import (
	"strings"

	"aratrack/internal/dto"
	"aratrack/internal/model"
)

// mayus trims and upper-cases free text before it is stored.
func mayus(s string) string { return strings.ToUpper(strings.TrimSpace(s)) }

func mayusLista(xs []string) []string {
	out := make([]string, len(xs))
	for i, x := range xs {
		out[i] = mayus(x)
	}
	return out
}

func marca(m dto.Marca) string {
	if m {
		return model.MarcaCheck
	}
	return ""
}

// viajeDesdeRequest builds the row and meal lines for the key
// (numero, centro). Fully blank meal lines are dropped.
func viajeDesdeRequest(numero, centro string, req dto.ViajeRequest) (*model.Viaje, []model.ComidaPreparada) {
	v := &model.Viaje{
		NumeroViaje: numero,
		CostoCodigo: centro,

		Casino:         mayus(req.Casino),
		Ruta:           mayus(req.Ruta),
		TipoCamion:     mayus(req.TipoCamion),
		PatenteCamion:  mayus(req.PatenteCamion),
		PatenteSemi:    mayus(req.PatenteSemi),
		NumeroRampa:    mayus(req.NumeroRampa),
		PesoCamion:     mayus(req.PesoCamion),
		TermografosGPS: mayus(req.TermografosGPS),
		NumeroCamion:   mayus(req.NumeroCamion),

		Fecha:               strings.TrimSpace(req.Fecha),
		FechaHoraLlegadaDHL: mayus(req.FechaHoraLlegadaDHL),
		FechaHoraSalidaDHL:  mayus(req.FechaHoraSalidaDHL),

		Conductor: mayus(req.Conductor),
		Celular:   mayus(req.Celular),
		RUT:       mayus(req.RUT),

		NumWencos:                 int(req.NumWencos),
		Bin:                       int(req.Bin),
		Pallets:                   int(req.Pallets),
		PalletsChep:               int(req.PalletsChep),
		PalletsPlNegroGrueso:      int(req.PalletsPlNegroGrueso),
		PalletsPlNegroAlternativo: int(req.PalletsPlNegroAlternativo),
		PalletsRefrigerado:        int(req.PalletsRefrigerado),
		WencosRefrigerado:         int(req.WencosRefrigerado),
		PalletsCongelado:          int(req.PalletsCongelado),
		WencosCongelado:           int(req.WencosCongelado),
		PalletsAbarrote:           int(req.PalletsAbarrote),

		CheckCongelado:                marca(req.CheckCongelado),
		CheckRefrigerado:              marca(req.CheckRefrigerado),
		CheckAbarrote:                 marca(req.CheckAbarrote),
		CheckImplementos:              marca(req.CheckImplementos),
		CheckAseo:                     marca(req.CheckAseo),
		CheckTrazabilidad:             marca(req.CheckTrazabilidad),
		CheckPlataformaWTCK:           marca(req.CheckPlataformaWTCK),
		CheckEnvCorreoWTCK:            marca(req.CheckEnvCorreoWTCK),
		CheckRevisionPlanillaDespacho: marca(req.CheckRevisionPlanillaDespacho),

		NumeroCertificadoFumigacion:    mayus(req.NumeroCertificadoFumigacion),
		RevisionLimpiezaCamionAcciones: mayus(req.RevisionLimpiezaCamionAcciones),
		AdministrativoResponsable:      mayus(req.AdministrativoResponsable),
	}
	v.SetSellosSalida(mayusLista(req.SellosSalida))
	v.SetSellosRetorno(mayusLista(req.SellosRetorno))
	v.SetGuias(mayusLista(req.Guias))

	comidas := make([]model.ComidaPreparada, 0, len(req.Comidas))
	for _, c := range req.Comidas {
		linea := model.ComidaPreparada{
			NumeroViaje:       numero,
			NumeroCentroCosto: centro,
			GuiaComida:        mayus(c.GuiaComida),
			Descripcion:       mayus(c.Descripcion),
			Kilo:              c.Kilo.Decimal,
			Bultos:            int(c.Bultos),
			Proveedor:         mayus(c.Proveedor),
		}
		if lineaVacia(linea) {
			continue
		}
		comidas = append(comidas, linea)
	}
	return v, comidas
}

func lineaVacia(c model.ComidaPreparada) bool {
	return c.GuiaComida == "" && c.Descripcion == "" && c.Proveedor == "" &&
		c.Kilo.IsZero() && c.Bultos == 0
}

func viajeToResponse(v *model.Viaje) *dto.ViajeResponse {
	guias := v.Guias()
	salida := v.SellosSalida()
	retorno := v.SellosRetorno()
	resp := &dto.ViajeResponse{
		ID:          v.ID,
		NumeroViaje: v.NumeroViaje,
		CentroCosto: v.CostoCodigo,

		Casino:         v.Casino,
		Ruta:           v.Ruta,
		TipoCamion:     v.TipoCamion,
		PatenteCamion:  v.PatenteCamion,
		PatenteSemi:    v.PatenteSemi,
		NumeroRampa:    v.NumeroRampa,
		PesoCamion:     v.PesoCamion,
		TermografosGPS: v.TermografosGPS,
		NumeroCamion:   v.NumeroCamion,

		Fecha:               v.Fecha,
		FechaHoraLlegadaDHL: v.FechaHoraLlegadaDHL,
		FechaHoraSalidaDHL:  v.FechaHoraSalidaDHL,

		Conductor: v.Conductor,
		Celular:   v.Celular,
		RUT:       v.RUT,

		NumWencos:                 v.NumWencos,
		Bin:                       v.Bin,
		Pallets:                   v.Pallets,
		PalletsChep:               v.PalletsChep,
		PalletsPlNegroGrueso:      v.PalletsPlNegroGrueso,
		PalletsPlNegroAlternativo: v.PalletsPlNegroAlternativo,
		PalletsRefrigerado:        v.PalletsRefrigerado,
		WencosRefrigerado:         v.WencosRefrigerado,
		PalletsCongelado:          v.PalletsCongelado,
		WencosCongelado:           v.WencosCongelado,
		PalletsAbarrote:           v.PalletsAbarrote,

		CheckCongelado:                v.CheckCongelado,
		CheckRefrigerado:              v.CheckRefrigerado,
		CheckAbarrote:                 v.CheckAbarrote,
		CheckImplementos:              v.CheckImplementos,
		CheckAseo:                     v.CheckAseo,
		CheckTrazabilidad:             v.CheckTrazabilidad,
		CheckPlataformaWTCK:           v.CheckPlataformaWTCK,
		CheckEnvCorreoWTCK:            v.CheckEnvCorreoWTCK,
		CheckRevisionPlanillaDespacho: v.CheckRevisionPlanillaDespacho,

		SellosSalida:  salida[:],
		SellosRetorno: retorno[:],
		Guias:         guias[:],

		NumeroCertificadoFumigacion:    v.NumeroCertificadoFumigacion,
		RevisionLimpiezaCamionAcciones: v.RevisionLimpiezaCamionAcciones,
		AdministrativoResponsable:      v.AdministrativoResponsable,

		Comidas: make([]dto.ComidaResponse, len(v.Comidas)),
	}
	for i, c := range v.Comidas {
		resp.Comidas[i] = dto.ComidaResponse{
			ID:          c.ID,
			GuiaComida:  c.GuiaComida,
			Descripcion: c.Descripcion,
			Kilo:        dto.Decimal{Decimal: c.Kilo},
			Bultos:      c.Bultos,
			Proveedor:   c.Proveedor,
		}
	}
	return resp
}
