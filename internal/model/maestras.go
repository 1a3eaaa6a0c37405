package model

// CentroCosto maps a cost-center code to its casino and route.
type CentroCosto struct {
	ID     uint   `gorm:"column:id;primaryKey;autoIncrement"`
	Codigo string `gorm:"column:codigo;uniqueIndex;not null"`
	Casino string `gorm:"column:casino;not null"`
	Ruta   string `gorm:"column:ruta"`
}

func (CentroCosto) TableName() string { return "centros_costo" }

// Chofer is a truck driver. Nombre and RUT are both unique.
type Chofer struct {
	ID      uint   `gorm:"column:id;primaryKey;autoIncrement"`
	Nombre  string `gorm:"column:nombre;uniqueIndex;not null"`
	RUT     string `gorm:"column:rut;uniqueIndex;not null"`
	Celular string `gorm:"column:celular"`
}

func (Chofer) TableName() string { return "choferes" }

// Administrativo is a staff member who can sign off a dispatch sheet.
// Nombre is unique regardless of case.
type Administrativo struct {
	ID     uint   `gorm:"column:id;primaryKey;autoIncrement"`
	Nombre string `gorm:"column:nombre;not null"`
}

func (Administrativo) TableName() string { return "administrativos" }
