package dto

type CentroCostoRequest struct {
	Codigo string `json:"codigo" validate:"required,max=20"`
	Casino string `json:"casino" validate:"required,max=100"`
	Ruta   string `json:"ruta"   validate:"max=100"`
}

type ActualizarCentroCostoRequest struct {
	Casino string `json:"casino" validate:"required,max=100"`
	Ruta   string `json:"ruta"   validate:"max=100"`
}

type CentroCostoResponse struct {
	Codigo string `json:"codigo"`
	Casino string `json:"casino"`
	Ruta   string `json:"ruta"`
}

type ChoferRequest struct {
	Nombre  string `json:"nombre"  validate:"required,max=100"`
	RUT     string `json:"rut"     validate:"required,max=20"`
	Celular string `json:"celular" validate:"max=30"`
}

type ActualizarChoferRequest struct {
	RUT     string `json:"rut"     validate:"required,max=20"`
	Celular string `json:"celular" validate:"max=30"`
}

type ChoferResponse struct {
	Nombre  string `json:"nombre"`
	RUT     string `json:"rut"`
	Celular string `json:"celular"`
}

type AdministrativoRequest struct {
	Nombre string `json:"nombre" validate:"required,max=100"`
}

type RenombrarAdministrativoRequest struct {
	NuevoNombre string `json:"nuevo_nombre" validate:"required,max=100"`
}
