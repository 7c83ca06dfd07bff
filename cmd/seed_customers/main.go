// seed_customers genera un script SQL para poblar la tabla customers a partir
// de un CSV exportado de un sistema anterior (columnas: nombre;nif;email;telefono;direccion,
// separado por ';', codificado en ISO-8859-1 como exportan las apps de escritorio antiguas).
//
// Uso: go run ./cmd/seed_customers <company_id> [ruta/clientes.csv]
// Por defecto busca clientes.csv en el directorio actual.
// Escribe: internal/infrastructure/postgres/migrations/002_seed_customers.sql
package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "Uso: seed_customers <company_id> [clientes.csv]")
		os.Exit(1)
	}
	companyID := os.Args[1]
	if _, err := uuid.Parse(companyID); err != nil {
		fmt.Fprintf(os.Stderr, "company_id inválido: %v\n", err)
		os.Exit(1)
	}
	csvPath := "clientes.csv"
	if len(os.Args) > 2 {
		csvPath = os.Args[2]
	}

	f, err := os.Open(csvPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir CSV: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	r := csv.NewReader(transform.NewReader(f, charmap.ISO8859_1.NewDecoder()))
	r.Comma = ';'
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer CSV: %v\n", err)
		os.Exit(1)
	}

	type cliente struct{ nombre, nif, email, telefono, direccion string }
	var clientes []cliente
	for i, rec := range records {
		if i == 0 && strings.EqualFold(strings.TrimSpace(rec[0]), "nombre") {
			continue // cabecera
		}
		if len(rec) == 0 || strings.TrimSpace(rec[0]) == "" {
			continue
		}
		c := cliente{nombre: strings.TrimSpace(rec[0])}
		if len(rec) > 1 {
			c.nif = strings.TrimSpace(rec[1])
		}
		if len(rec) > 2 {
			c.email = strings.TrimSpace(rec[2])
		}
		if len(rec) > 3 {
			c.telefono = strings.TrimSpace(rec[3])
		}
		if len(rec) > 4 {
			c.direccion = strings.TrimSpace(rec[4])
		}
		clientes = append(clientes, c)
	}
	if len(clientes) == 0 {
		fmt.Fprintln(os.Stderr, "El CSV no contiene clientes")
		os.Exit(1)
	}

	moduleRoot := findModuleRoot()
	outPath := filepath.Join(moduleRoot, "internal", "infrastructure", "postgres", "migrations", "002_seed_customers.sql")
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	out.WriteString("-- Clientes importados del sistema anterior\n")
	fmt.Fprintf(out, "-- Generado desde %s\n\n", filepath.Base(csvPath))
	out.WriteString("INSERT INTO customers (id, company_id, name, tax_id, email, phone, address) VALUES\n")
	for i, c := range clientes {
		sep := ","
		if i == len(clientes)-1 {
			sep = ""
		}
		fmt.Fprintf(out, "  ('%s', '%s', '%s', '%s', '%s', '%s', '%s')%s\n",
			uuid.New().String(), companyID,
			escapeSQL(c.nombre), escapeSQL(c.nif), escapeSQL(c.email),
			escapeSQL(c.telefono), escapeSQL(c.direccion), sep)
	}
	out.WriteString("ON CONFLICT (id) DO NOTHING;\n")

	fmt.Printf("Generado %s: %d clientes\n", outPath, len(clientes))
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
