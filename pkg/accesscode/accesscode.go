// Package accesscode genera los códigos de acceso que sustituyen la
// contraseña de los votantes. El alfabeto excluye caracteres ambiguos
// (0/O, 1/I/L) porque el código se transcribe a mano desde un correo.
package accesscode

import (
	"crypto/rand"
	"fmt"
)

const (
	alphabet = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"

	// Length longitud fija del código generado.
	Length = 8
)

// Generate devuelve un código aleatorio de Length caracteres sobre el
// alfabeto no ambiguo. Usa crypto/rand; el sesgo por módulo es irrelevante
// con un alfabeto de 31 símbolos y códigos de un solo uso administrativo.
func Generate() (string, error) {
	buf := make([]byte, Length)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("accesscode: %w", err)
	}
	for i, b := range buf {
		buf[i] = alphabet[int(b)%len(alphabet)]
	}
	return string(buf), nil
}
