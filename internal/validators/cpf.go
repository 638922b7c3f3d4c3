package validators

// IsCPF accepts an 11-digit CPF string. Punctuated input ("000.000.000-00")
// is rejected: callers are expected to strip formatting client-side.
func IsCPF(cpf string) bool {
	if len(cpf) != 11 {
		return false
	}
	for _, r := range cpf {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
