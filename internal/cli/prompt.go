package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Prompter implements the interactive validation loops: each Leer* method
// re-prompts until the input satisfies its predicate. Reading from an
// injected io.Reader lets tests script whole sessions.
type Prompter struct {
	sc  *bufio.Scanner
	out io.Writer
	eof bool
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{sc: bufio.NewScanner(in), out: out}
}

// EOF reports whether the input stream ran out. Validation loops stop
// retrying once the stream is exhausted, so a closed stdin cannot spin.
func (p *Prompter) EOF() bool { return p.eof }

// Linea prints the prompt and returns one trimmed input line ("" on EOF).
func (p *Prompter) Linea(prompt string) string {
	fmt.Fprint(p.out, prompt)
	if !p.sc.Scan() {
		p.eof = true
		return ""
	}
	return strings.TrimSpace(p.sc.Text())
}

// LeerTexto repeats until a non-empty line is entered.
func (p *Prompter) LeerTexto(prompt string) string {
	for !p.eof {
		s := p.Linea(prompt)
		if s != "" {
			return s
		}
		fmt.Fprintln(p.out, "El valor no puede estar vacío.")
	}
	return ""
}

// LeerEntero repeats until the input parses as an integer >= min.
func (p *Prompter) LeerEntero(prompt string, min int) int {
	for !p.eof {
		s := p.Linea(prompt)
		n, err := strconv.Atoi(s)
		if err != nil {
			fmt.Fprintln(p.out, "Ingrese un número entero válido.")
			continue
		}
		if n < min {
			fmt.Fprintf(p.out, "El valor debe ser mayor o igual a %d.\n", min)
			continue
		}
		return n
	}
	return min
}

// LeerDecimal repeats until the input parses as a positive decimal.
func (p *Prompter) LeerDecimal(prompt string) decimal.Decimal {
	for !p.eof {
		s := p.Linea(prompt)
		d, err := decimal.NewFromString(s)
		if err != nil {
			fmt.Fprintln(p.out, "Ingrese un número válido.")
			continue
		}
		if d.LessThanOrEqual(decimal.Zero) {
			fmt.Fprintln(p.out, "El valor debe ser positivo.")
			continue
		}
		return d
	}
	return decimal.Zero
}

// LeerOpcion shows the numbered options and repeats until one is selected.
// Returns the selected option's value.
func (p *Prompter) LeerOpcion(prompt string, opciones []string) string {
	for !p.eof {
		fmt.Fprintln(p.out, prompt)
		for i, o := range opciones {
			fmt.Fprintf(p.out, "  %d. %s\n", i+1, o)
		}
		s := p.Linea("Seleccione una opción: ")
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 || n > len(opciones) {
			fmt.Fprintln(p.out, "Opción inválida.")
			continue
		}
		return opciones[n-1]
	}
	if len(opciones) > 0 {
		return opciones[0]
	}
	return ""
}

// LeerConfirmacion repeats until "s" or "n" is entered.
func (p *Prompter) LeerConfirmacion(prompt string) bool {
	for !p.eof {
		s := strings.ToLower(p.Linea(prompt + " (s/n): "))
		switch s {
		case "s", "si", "sí":
			return true
		case "n", "no":
			return false
		}
		fmt.Fprintln(p.out, "Responda s o n.")
	}
	return false
}
