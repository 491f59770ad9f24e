package models

// All daftar model untuk AutoMigrate, urut dari tabel yang direferensikan dulu
func All() []interface{} {
	return []interface{}{
		&BusinessArea{},
		&User{},
		&EmployeeTitle{},
		&Employee{},
		&Product{},
		&Stock{},
		&Purchase{},
		&Schedule{},
		&Patient{},
		&Order{},
		&OrderItem{},
		&MedicalRecord{},
		&PaymentTransaction{},
	}
}
