package infra

// planilla_pdf.go: dispatch control sheet ("planilla control despacho") using go-pdf/fpdf.
// One Letter page per (numero_viaje, costo_codigo):
//   - Header with trip number
//   - Trip info table (casino, route, truck, driver, DHL times)
//   - Outbound assets and pallets by area
//   - Checkbox row, seals, guides
//   - Prepared meals table (fixed 20 rows)
//   - Signature row
//
// NuevaPlanilla builds the cell texts; DocumentoDespacho draws them.

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"aratrack/internal/model"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"
)

const (
	FilasComidas   = 20
	maxProveedor   = 15
	maxDescripcion = 20

	mmPorPulgada = 25.4
	anchoTabla   = 7.5 // inches
)

// Check is one labelled checkbox of the sheet.
type Check struct {
	Etiqueta string
	Marcado  bool
}

// FilaComida is one row of the meals table, already formatted.
type FilaComida struct {
	Guia        string
	Proveedor   string
	Descripcion string
	Kilo        string
	Bultos      string
}

// Planilla holds every text printed on one dispatch sheet.
type Planilla struct {
	NumeroViaje string
	// Info rows are label, value, label, value.
	Info [8][4]string
	// Activos rows are label/value pairs; rows 3 and 4 leave cells 2 and 3
	// empty because their value spans three columns.
	Activos       [5][6]string
	Checks        [9]Check
	SellosSalida  [model.MaxSellos]string
	SellosRetorno [model.MaxSellos]string
	Guias         [model.MaxGuias]string
	Comidas       [FilasComidas]FilaComida
}

// NuevaPlanilla lays out one sheet. Zero counts and kilos print blank, long
// supplier/description texts are cut, and only the first FilasComidas meal
// lines are shown.
func NuevaPlanilla(v *model.Viaje, comidas []model.ComidaPreparada) Planilla {
	p := Planilla{NumeroViaje: v.NumeroViaje}

	p.Info = [8][4]string{
		{"CASINO", v.Casino, "C.COSTO", v.CostoCodigo},
		{"RUTA", v.Ruta, "PATENTE CAMION", v.PatenteCamion},
		{"FECHA", v.Fecha, "PATENTE SEMI", v.PatenteSemi},
		{"PESO", v.PesoCamion, "TIPO CAMION", v.TipoCamion},
		{"TERMOGRAFOS", v.TermografosGPS, "N° DE RAMPLA", v.NumeroRampa},
		{"CONDUCTOR", v.Conductor, "N° CAMION", v.NumeroCamion},
		{"RUT", v.RUT, "FECHA HORA LLEGADA", v.FechaHoraLlegadaDHL},
		{"CELULAR", v.Celular, "FECHA HORA SALIDA", v.FechaHoraSalidaDHL},
	}

	p.Activos = [5][6]string{
		{"N° WENCOS", cantidad(v.NumWencos), "BIN", cantidad(v.Bin), "REFRIGERADO", cantidad(v.PalletsRefrigerado)},
		{"PALLETS", cantidad(v.Pallets), "PALLET\nNEGRO GRUESO", cantidad(v.PalletsPlNegroGrueso), "CONGELADO", cantidad(v.PalletsCongelado)},
		{"PALLET\nCHEP", cantidad(v.PalletsChep), "PALLET\nNEGRO ALTER.", cantidad(v.PalletsPlNegroAlternativo), "ABARROTE", cantidad(v.PalletsAbarrote)},
		{"ADMIN.\nRESPONSABLE", v.AdministrativoResponsable, "", "", "WENCOS\nCONGELADO", cantidad(v.WencosCongelado)},
		{"REVISION\nLIMPIEZA", v.RevisionLimpiezaCamionAcciones, "", "", "WENCOS\nREFRIGERADO", cantidad(v.WencosRefrigerado)},
	}

	p.Checks = [9]Check{
		{"CONG.", marcado(v.CheckCongelado)},
		{"REFRIG.", marcado(v.CheckRefrigerado)},
		{"ABARR.", marcado(v.CheckAbarrote)},
		{"IMPLEM.", marcado(v.CheckImplementos)},
		{"ASEO", marcado(v.CheckAseo)},
		{"TRAZ.", marcado(v.CheckTrazabilidad)},
		{"PLAT. WTCK", marcado(v.CheckPlataformaWTCK)},
		{"ENV. WTCK", marcado(v.CheckEnvCorreoWTCK)},
		{"REV. PLANILLA", marcado(v.CheckRevisionPlanillaDespacho)},
	}

	p.SellosSalida = v.SellosSalida()
	p.SellosRetorno = v.SellosRetorno()
	p.Guias = v.Guias()

	for i, c := range comidas {
		if i == FilasComidas {
			break
		}
		p.Comidas[i] = FilaComida{
			Guia:        c.GuiaComida,
			Proveedor:   truncar(c.Proveedor, maxProveedor),
			Descripcion: truncar(c.Descripcion, maxDescripcion),
			Kilo:        kilos(c.Kilo),
			Bultos:      cantidad(c.Bultos),
		}
	}
	return p
}

// marcado is strict: only the exact sentinel counts as checked.
func marcado(v string) bool { return v == model.MarcaCheck }

func cantidad(n int) string {
	if n == 0 {
		return ""
	}
	return strconv.Itoa(n)
}

func kilos(d decimal.Decimal) string {
	if d.IsZero() {
		return ""
	}
	return d.String()
}

func truncar(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

// ── Drawing ──────────────────────────────────────────────────────────────────

type estilo int

const (
	estiloValor estilo = iota
	estiloEtiqueta
	estiloTitulo
)

type celda struct {
	texto  string
	ancho  float64 // inches
	estilo estilo
	tam    float64 // points
}

// DocumentoDespacho accumulates dispatch sheets, one page each.
type DocumentoDespacho struct {
	pdf *fpdf.Fpdf
	tr  func(string) string
	x0  float64
}

func NuevoDocumentoDespacho() *DocumentoDespacho {
	pdf := fpdf.New("P", "mm", "Letter", "")
	pdf.SetMargins(8, 5, 8)
	pdf.SetAutoPageBreak(false, 5)
	pdf.SetLineWidth(0.3)
	pageW, _ := pdf.GetPageSize()
	return &DocumentoDespacho{
		pdf: pdf,
		tr:  pdf.UnicodeTranslatorFromDescriptor(""),
		x0:  (pageW - anchoTabla*mmPorPulgada) / 2,
	}
}

// Paginas returns how many sheets have been added.
func (d *DocumentoDespacho) Paginas() int { return d.pdf.PageCount() }

// Escribir writes the finished document to w.
func (d *DocumentoDespacho) Escribir(w io.Writer) error {
	if err := d.pdf.Output(w); err != nil {
		return fmt.Errorf("pdf: output: %w", err)
	}
	return nil
}

// Guardar writes the document to path, creating its directory if needed.
func (d *DocumentoDespacho) Guardar(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("pdf: create storage dir: %w", err)
	}
	if err := d.pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("pdf: write file: %w", err)
	}
	return nil
}

// AgregarPlanilla draws p on a new page.
func (d *DocumentoDespacho) AgregarPlanilla(p Planilla) {
	d.pdf.AddPage()
	y := 5.0
	sep := 1.0 // mm between blocks

	// ── Header ───────────────────────────────────────────────────────────────
	y = d.fila(y, 0.3, []celda{
		{"PLANILLA CONTROL DESPACHO", 5.0, estiloTitulo, 10},
		{"VIAJE", 0.8, estiloEtiqueta, 10},
		{p.NumeroViaje, 1.7, estiloValor, 10},
	}) + sep

	// ── Trip info ────────────────────────────────────────────────────────────
	for i, r := range p.Info {
		alto, tamEtiqueta, tamValor := 0.18, 5.5, 7.0
		if i == 0 {
			alto, tamEtiqueta, tamValor = 0.25, 7.0, 8.0
		}
		y = d.fila(y, alto, []celda{
			{r[0], 1.1, estiloEtiqueta, tamEtiqueta},
			{r[1], 3.7, estiloValor, tamValor},
			{r[2], 0.9, estiloEtiqueta, tamEtiqueta},
			{r[3], 1.8, estiloValor, tamValor},
		})
	}
	y += sep

	// ── Assets ───────────────────────────────────────────────────────────────
	y = d.fila(y, 0.2, []celda{
		{"ACTIVOS SALIDA", 5.0, estiloTitulo, 8},
		{"PALLETS POR AREA", 2.5, estiloTitulo, 8},
	})
	for i, r := range p.Activos {
		if i >= 3 {
			y = d.fila(y, 0.3, []celda{
				{r[0], 1.25, estiloEtiqueta, 6.5},
				{r[1], 3.75, estiloValor, 8},
				{r[4], 1.25, estiloEtiqueta, 6.5},
				{r[5], 1.25, estiloValor, 10},
			})
			continue
		}
		y = d.fila(y, 0.3, []celda{
			{r[0], 1.25, estiloEtiqueta, 6.5},
			{r[1], 1.25, estiloValor, 10},
			{r[2], 1.25, estiloEtiqueta, 6.5},
			{r[3], 1.25, estiloValor, 10},
			{r[4], 1.25, estiloEtiqueta, 6.5},
			{r[5], 1.25, estiloValor, 10},
		})
	}
	y += sep

	// ── Checkboxes ───────────────────────────────────────────────────────────
	anchosCheck := [9]float64{0.55, 0.55, 0.55, 0.6, 0.45, 0.5, 0.75, 0.7, 0.9}
	checks := make([]celda, 0, 18)
	for i, c := range p.Checks {
		marca := ""
		if c.Marcado {
			marca = "x"
		}
		checks = append(checks,
			celda{c.Etiqueta, anchosCheck[i] * anchoTabla / 7.53, estiloEtiqueta, 6},
			celda{marca, 0.22 * anchoTabla / 7.53, estiloValor, 8},
		)
	}
	y = d.fila(y, 0.3, checks) + sep

	// ── Seals ────────────────────────────────────────────────────────────────
	encabezado := []celda{{"SELLOS", 1.25, estiloTitulo, 7}}
	salida := []celda{{"SALIDA", 1.25, estiloEtiqueta, 7}}
	entrada := []celda{{"ENTRADA", 1.25, estiloEtiqueta, 7}}
	for i := 0; i < model.MaxSellos; i++ {
		encabezado = append(encabezado, celda{fmt.Sprintf("%dP", i+1), 1.25, estiloTitulo, 7})
		salida = append(salida, celda{p.SellosSalida[i], 1.25, estiloValor, 7})
		entrada = append(entrada, celda{p.SellosRetorno[i], 1.25, estiloValor, 7})
	}
	y = d.fila(y, 0.2, encabezado)
	y = d.fila(y, 0.2, salida)
	y = d.fila(y, 0.2, entrada) + sep

	// ── Guides ───────────────────────────────────────────────────────────────
	y = d.fila(y, 0.2, []celda{{"GUIAS", anchoTabla, estiloTitulo, 8}})
	for f := 0; f < model.MaxGuias/7; f++ {
		guias := make([]celda, 7)
		for c := 0; c < 7; c++ {
			guias[c] = celda{p.Guias[f*7+c], anchoTabla / 7, estiloValor, 7}
		}
		y = d.fila(y, 0.2, guias)
	}
	y += sep

	// ── Prepared meals ───────────────────────────────────────────────────────
	y = d.fila(y, 0.2, []celda{{"COMIDAS PREPARADAS / IMPLEMENTOS", anchoTabla, estiloTitulo, 8}})
	y = d.fila(y, 0.18, []celda{
		{"GUIAS", 1.2, estiloEtiqueta, 6},
		{"PROVEEDOR", 1.6, estiloEtiqueta, 6},
		{"DESCRIPCION", 3.5, estiloEtiqueta, 6},
		{"KILO", 0.6, estiloEtiqueta, 6},
		{"BULTOS", 0.6, estiloEtiqueta, 6},
	})
	for _, c := range p.Comidas {
		y = d.fila(y, 0.18, []celda{
			{c.Guia, 1.2, estiloValor, 6},
			{c.Proveedor, 1.6, estiloValor, 6},
			{c.Descripcion, 3.5, estiloValor, 6},
			{c.Kilo, 0.6, estiloValor, 6},
			{c.Bultos, 0.6, estiloValor, 6},
		})
	}
	y += sep

	// ── Signatures ───────────────────────────────────────────────────────────
	y = d.fila(y, 0.2, []celda{
		{"NOMBRE Y FIRMA DHL", 1.875, estiloEtiqueta, 6},
		{"PORTERIA DHL", 1.875, estiloEtiqueta, 6},
		{"FIRMA CONDUCTOR", 1.875, estiloEtiqueta, 6},
		{"FIRMA RESP. CASINO\nDEVOLUCION Y RECEPCIONES", 1.875, estiloEtiqueta, 6},
	})
	d.fila(y, 0.45, []celda{
		{"", 1.875, estiloValor, 6},
		{"", 1.875, estiloValor, 6},
		{"", 1.875, estiloValor, 6},
		{"", 1.875, estiloValor, 6},
	})
}

// fila draws one row of bordered cells starting at y (mm) and returns the y
// just below it. alto is in inches.
func (d *DocumentoDespacho) fila(y, alto float64, celdas []celda) float64 {
	h := alto * mmPorPulgada
	x := d.x0
	for _, c := range celdas {
		w := c.ancho * mmPorPulgada
		switch c.estilo {
		case estiloTitulo:
			d.pdf.SetFillColor(0x80, 0x80, 0x80)
			d.pdf.SetTextColor(255, 255, 255)
			d.pdf.SetFont("Helvetica", "B", c.tam)
			d.pdf.Rect(x, y, w, h, "FD")
		case estiloEtiqueta:
			d.pdf.SetFillColor(0xD0, 0xD0, 0xD0)
			d.pdf.SetTextColor(0, 0, 0)
			d.pdf.SetFont("Helvetica", "B", c.tam)
			d.pdf.Rect(x, y, w, h, "FD")
		default:
			d.pdf.SetTextColor(0, 0, 0)
			d.pdf.SetFont("Helvetica", "", c.tam)
			d.pdf.Rect(x, y, w, h, "D")
		}

		if c.texto != "" {
			lineas := strings.Split(c.texto, "\n")
			altoLinea := c.tam * 0.3528 * 1.15 // points to mm plus leading
			top := y + (h-altoLinea*float64(len(lineas)))/2
			for i, l := range lineas {
				d.pdf.SetXY(x, top+float64(i)*altoLinea)
				d.pdf.CellFormat(w, altoLinea, d.tr(l), "", 0, "C", false, 0, "")
			}
		}
		x += w
	}
	return y + h
}
