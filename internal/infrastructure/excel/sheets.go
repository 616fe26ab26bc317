package excel

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

const defaultSheet = "Sheet1"

// record é uma linha da planilha indexada pelo nome da coluna (cabeçalho).
// A ordem das colunas não importa; a presença por nome sim.
type record map[string]string

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// readSheet lê a primeira aba de um arquivo xlsx e devolve as linhas como
// registros nome-de-coluna → valor. Arquivo inexistente devolve nil, nil.
func readSheet(path string) ([]record, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}

	headers := rows[0]
	records := make([]record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		rec := make(record, len(headers))
		empty := true
		for i, h := range headers {
			v := ""
			if i < len(row) {
				v = strings.TrimSpace(row[i])
			}
			if v != "" {
				empty = false
			}
			rec[h] = v
		}
		if !empty {
			records = append(records, rec)
		}
	}
	return records, nil
}

// writeSheet grava cabeçalhos na linha 1 e os valores em seguida, uma coluna
// por cabeçalho, no padrão do restante do sistema (uma aba, A1 em diante).
func writeSheet(path string, headers []string, rows [][]any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f := excelize.NewFile()
	defer f.Close()

	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(defaultSheet, cell, h); err != nil {
			return err
		}
	}
	for r, row := range rows {
		for c, v := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(defaultSheet, cell, v); err != nil {
				return err
			}
		}
	}
	return f.SaveAs(path)
}

func parseInt(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	// Planilhas costumam devolver inteiros como "2024" ou "2024.0"
	if i := strings.IndexByte(s, '.'); i >= 0 {
		s = s[:i]
	}
	return strconv.Atoi(s)
}

func parseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "verdadeiro", "1", "sim", "s":
		return true
	}
	return false
}
