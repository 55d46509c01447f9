// Package entity contains the core business objects of the project.
package entity

// Organization is a CNPJ-keyed company record, fetched from an external
// registry (or a local fixture set outside production) and stored as a
// snapshot on each internship.
type Organization struct {
	CNPJ          string  // Brazilian company tax-ID, digits only.
	CorporateName string  // Legal name ("razão social").
	BusinessName  string  // Trade name ("nome fantasia").
	Address       Address // Registered company address.
	Phone1        string  // Primary phone, area code concatenated with the number.
	Phone2        string  // Secondary phone, may be empty.
	Website       string  // Company website, may be empty.
}
