package mysql

// CargoModel é o model GORM para a tabela cargo
type CargoModel struct {
	ID   int    `gorm:"column:idCargo;primaryKey;autoIncrement"`
	Nome string `gorm:"column:nomeCargo;type:varchar(64);uniqueIndex;not null"`
}

func (CargoModel) TableName() string {
	return "cargo"
}

// FuncionarioModel é o model GORM para a tabela funcionario.
// A coluna senha guarda o hash bcrypt, nunca a senha em claro.
type FuncionarioModel struct {
	ID                   int         `gorm:"column:idFuncionario;primaryKey;autoIncrement"`
	Nome                 string      `gorm:"column:nomeFuncionario;type:varchar(128)"`
	Email                string      `gorm:"column:email;type:varchar(64);uniqueIndex"`
	Senha                string      `gorm:"column:senha;type:varchar(64)"`
	RecebeValeTransporte int         `gorm:"column:recebeValeTransporte;type:tinyint;not null;default:0"`
	CargoID              int         `gorm:"column:Cargo_idCargo;not null"`
	Cargo                *CargoModel `gorm:"foreignKey:CargoID;references:ID"`
}

func (FuncionarioModel) TableName() string {
	return "funcionario"
}
