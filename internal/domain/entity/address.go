// Package entity contains the core business objects of the project.
package entity

// Address is a Brazilian postal address. It is embedded both in student
// profiles and in organization records fetched from CNPJ registries.
type Address struct {
	Street         string // Street name ("logradouro").
	Number         string // Street number, may carry letters ("12-B").
	AdditionalInfo string // Complement, e.g. apartment or suite ("complemento").
	District       string // Neighborhood ("bairro").
	City           string // City name.
	State          string // Two-letter state code ("UF").
	PostalCode     string // CEP, digits only.
}
