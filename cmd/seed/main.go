// seed genera un script SQL para cargar un catálogo de productos a partir de
// un CSV exportado de un POS heredado (delimitado por ';', codificado en
// ISO-8859-1, con tildes y eñes en los nombres).
//
// Columnas esperadas: name;sku;cost_price;retail_price;wholesale_price;stock;min_stock;category
//
// Uso: go run ./cmd/seed -user <user_id> [ruta/catalogo.csv]
// Por defecto busca catalogo.csv en el directorio actual.
// Escribe: seed_catalog.sql en la raíz del módulo.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

type row struct {
	name, sku      string
	cost           string
	retail         string
	wholesale      string
	stock          int
	minStock       int
	category       string
}

func main() {
	userID := flag.String("user", "", "ID del usuario dueño del catálogo (requerido)")
	flag.Parse()
	if *userID == "" {
		fmt.Fprintln(os.Stderr, "falta -user <user_id>")
		os.Exit(1)
	}

	csvPath := "catalogo.csv"
	if flag.NArg() > 0 {
		csvPath = flag.Arg(0)
	}
	f, err := os.Open(csvPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir CSV: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	// Los exports del POS vienen en ISO-8859-1; decodificar a UTF-8 al leer
	reader := csv.NewReader(transform.NewReader(f, charmap.ISO8859_1.NewDecoder()))
	reader.Comma = ';'
	reader.FieldsPerRecord = 8

	records, err := reader.ReadAll()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer CSV: %v\n", err)
		os.Exit(1)
	}

	var rows []row
	for i, rec := range records {
		if i == 0 && strings.EqualFold(rec[0], "name") {
			continue // encabezado
		}
		name := strings.TrimSpace(rec[0])
		sku := strings.TrimSpace(rec[1])
		if name == "" || sku == "" {
			continue
		}
		stock, err := strconv.Atoi(strings.TrimSpace(rec[5]))
		if err != nil || stock < 0 {
			fmt.Fprintf(os.Stderr, "fila %d: stock inválido %q, se omite\n", i+1, rec[5])
			continue
		}
		minStock, err := strconv.Atoi(strings.TrimSpace(rec[6]))
		if err != nil || minStock < 0 {
			minStock = 0
		}
		rows = append(rows, row{
			name:      name,
			sku:       sku,
			cost:      numeric(rec[2]),
			retail:    numeric(rec[3]),
			wholesale: numeric(rec[4]),
			stock:     stock,
			minStock:  minStock,
			category:  strings.TrimSpace(rec[7]),
		})
	}

	outPath := filepath.Join(findModuleRoot(), "seed_catalog.sql")
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	fmt.Fprintf(out, "-- Catálogo inicial para el usuario %s\n", *userID)
	fmt.Fprintf(out, "-- Generado desde %s\n\n", csvPath)
	out.WriteString("BEGIN;\n\n")

	for _, r := range rows {
		productID := uuid.New().String()
		fmt.Fprintf(out, "INSERT INTO products (id, user_id, name, sku, cost_price, retail_price, wholesale_price, stock, min_stock, category)\n")
		fmt.Fprintf(out, "VALUES ('%s', '%s', '%s', '%s', %s, %s, %s, %d, %d, '%s');\n",
			productID, escapeSQL(*userID), escapeSQL(r.name), escapeSQL(r.sku),
			r.cost, r.retail, r.wholesale, r.stock, r.minStock, escapeSQL(r.category))
		// El stock inicial entra al ledger para que la reconciliación parta de cero
		if r.stock > 0 {
			fmt.Fprintf(out, "INSERT INTO stock_movements (id, user_id, product_id, product_name, type, quantity, reason)\n")
			fmt.Fprintf(out, "VALUES ('%s', '%s', '%s', '%s', 'in', %d, 'Initial stock');\n",
				uuid.New().String(), escapeSQL(*userID), productID, escapeSQL(r.name), r.stock)
		}
		out.WriteString("\n")
	}

	out.WriteString("COMMIT;\n")
	fmt.Printf("Generado %s: %d productos\n", outPath, len(rows))
}

// numeric sanea un campo de precio: coma decimal del POS a punto, vacío a 0.
func numeric(s string) string {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	if s == "" {
		return "0"
	}
	if _, err := strconv.ParseFloat(s, 64); err != nil {
		return "0"
	}
	return s
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
