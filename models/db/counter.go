package dbmodels

import "fmt"

// Counter - именованная последовательность для генерации номеров
// (например, табельных номеров сотрудников)
type Counter struct {
	Name    string `gorm:"primaryKey;type:varchar(50)"`
	Prefix  string `gorm:"type:varchar(10)"`
	Padding int
	Value   int64
}

const EmployeeNumberCounter = "employee_number"

// FormatValue - номер с префиксом и ведущими нулями, например EMP0042
func (r Counter) FormatValue() string {
	return fmt.Sprintf("%s%0*d", r.Prefix, r.Padding, r.Value)
}
