package validators

import "strings"

// CleanCPF remove tudo que não for dígito (pontos, traço, espaços).
func CleanCPF(cpf string) string {
	var sb strings.Builder
	for _, r := range cpf {
		if r >= '0' && r <= '9' {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// IsValidCPF valida um CPF pelo algoritmo oficial dos dois dígitos
// verificadores. Aceita o CPF com ou sem pontuação.
func IsValidCPF(cpf string) bool {
	cpf = CleanCPF(cpf)

	if len(cpf) != 11 || allSameDigit(cpf) {
		return false
	}

	// primeiro dígito verificador (posições 1..9, pesos 10..2)
	sum := 0
	for i := 1; i <= 9; i++ {
		sum += int(cpf[i-1]-'0') * (11 - i)
	}
	check := (sum * 10) % 11
	if check == 10 || check == 11 {
		check = 0
	}
	if check != int(cpf[9]-'0') {
		return false
	}

	// segundo dígito verificador (posições 1..10, pesos 11..2)
	sum = 0
	for i := 1; i <= 10; i++ {
		sum += int(cpf[i-1]-'0') * (12 - i)
	}
	check = (sum * 10) % 11
	if check == 10 || check == 11 {
		check = 0
	}
	return check == int(cpf[10]-'0')
}

func allSameDigit(s string) bool {
	for i := 1; i < len(s); i++ {
		if s[i] != s[0] {
			return false
		}
	}
	return true
}
