package notify

import "strings"

// digitsOnly elimina todo lo que no sea dígito.
func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// localNumber devuelve los últimos 10 dígitos del teléfono (formato local que
// espera Fast2SMS). Vacío si no hay 10 dígitos.
func localNumber(phone string) string {
	d := digitsOnly(phone)
	if len(d) < 10 {
		return ""
	}
	return d[len(d)-10:]
}

// waNumber devuelve el número en formato internacional sin '+' para WhatsApp
// Cloud API: código de país 91 + número local.
func waNumber(phone string) string {
	local := localNumber(phone)
	if local == "" {
		return ""
	}
	return "91" + local
}
