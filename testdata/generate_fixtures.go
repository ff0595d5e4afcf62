//go:build ignore

// This program generates test fixture files for xlstack.
package main

import (
	"fmt"
	"os"

	"github.com/xuri/excelize/v2"
)

func main() {
	if err := generateWorkbook(); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating sample.xlsx: %v\n", err)
		os.Exit(1)
	}

	if err := generateConfig(); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating sample_config.json: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Test fixtures generated successfully.")
}

// generateWorkbook writes a quarterly sales workbook with uneven sheets:
// Q3 has an extra column, Q4 has no data rows.
func generateWorkbook() error {
	sheets := []struct {
		name string
		rows [][]interface{}
	}{
		{"Q1", [][]interface{}{
			{"Region", "Product", "Units", "Revenue", "Notes"},
			{"North", "Widget", 120, 2400.50, "steady demand across the quarter"},
			{"South", "Widget", 80, 1600.00, "promo in March"},
			{"North", "Gadget", 45, 3150.75, ""},
		}},
		{"Q2", [][]interface{}{
			{"Region", "Product", "Units", "Revenue", "Notes"},
			{"North", "Widget", 150, 3000.00, "restock delayed two weeks"},
			{"South", "Gadget", 60, 4200.00, "new distributor"},
		}},
		{"Q3", [][]interface{}{
			{"Region", "Product", "Units", "Revenue", "Notes", "Returns"},
			{"North", "Widget", 130, 2600.00, "", 3},
			{"South", "Widget", 95, 1900.00, "heat wave slowed deliveries", 1},
		}},
		{"Q4", [][]interface{}{
			{"Region", "Product", "Units", "Revenue", "Notes"},
		}},
	}

	f := excelize.NewFile()
	defer f.Close()

	for i, sheet := range sheets {
		if i == 0 {
			if err := f.SetSheetName(f.GetSheetName(0), sheet.name); err != nil {
				return err
			}
		} else {
			if _, err := f.NewSheet(sheet.name); err != nil {
				return err
			}
		}
		for r, row := range sheet.rows {
			cell := fmt.Sprintf("A%d", r+1)
			if err := f.SetSheetRow(sheet.name, cell, &row); err != nil {
				return err
			}
		}
	}

	return f.SaveAs("testdata/sample.xlsx")
}

// generateConfig writes a transform configuration exercising every dtype.
func generateConfig() error {
	config := `{
  "Region": {
    "word_count": false,
    "dtype": "category",
    "description": "Column: Region"
  },
  "Units": {
    "word_count": false,
    "dtype": "int",
    "description": "Column: Units"
  },
  "Revenue": {
    "word_count": false,
    "dtype": "float",
    "description": "Column: Revenue"
  },
  "Notes": {
    "word_count": true,
    "dtype": "string",
    "description": "Column: Notes"
  }
}
`
	return os.WriteFile("testdata/sample_config.json", []byte(config), 0644)
}
