package datasource

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/gabriel-vasile/mimetype"

	"github.com/fr4nk3nst1ner/salaryforecast/internal/errors"
	"github.com/fr4nk3nst1ner/salaryforecast/internal/models"
	"github.com/fr4nk3nst1ner/salaryforecast/internal/utils"
)

const roleKey = "Role"

// Row is one untyped record from a JSON array or an HTML table.
type Row map[string]any

// Decoder turns untyped rows into typed records, rejecting rows that lack
// required fields.
type Decoder[T any] func(rows []Row) ([]T, error)

// parseRows decodes body as an HTML table when the server or the content
// sniffer says it is HTML, and as a JSON array otherwise.
func parseRows(body []byte, contentType string) ([]Row, error) {
	if isHTML(body, contentType) {
		return parseHTMLRows(body)
	}
	return parseJSONRows(body)
}

func isHTML(body []byte, contentType string) bool {
	if mediaType, _, err := mime.ParseMediaType(contentType); err == nil && mediaType == "text/html" {
		return true
	}
	return mimetype.Detect(bytes.TrimSpace(body)).Is("text/html")
}

func parseJSONRows(body []byte) ([]Row, error) {
	var rows []Row
	if err := json.Unmarshal(body, &rows); err != nil {
		return nil, errors.MalformedInput("decoding JSON array", err)
	}
	if rows == nil {
		return nil, errors.MalformedInput("payload is not a JSON array", nil)
	}
	for i, row := range rows {
		if row == nil {
			return nil, errors.MalformedInput(fmt.Sprintf("row %d is not an object", i), nil)
		}
	}
	return rows, nil
}

// parseHTMLRows reads the first table in the document. The first row holds
// the column names; numeric cells are converted with utils.ParseAmount.
func parseHTMLRows(body []byte) ([]Row, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, errors.MalformedInput("parsing HTML", err)
	}

	table := doc.Find("table").First()
	if table.Length() == 0 {
		return nil, errors.MalformedInput("no table found in HTML payload", nil)
	}

	var headers []string
	rows := []Row{}
	table.Find("tr").Each(func(i int, tr *goquery.Selection) {
		cells := tr.Find("th, td")
		if cells.Length() == 0 {
			return
		}
		if headers == nil {
			cells.Each(func(_ int, cell *goquery.Selection) {
				headers = append(headers, strings.TrimSpace(cell.Text()))
			})
			return
		}

		row := Row{}
		cells.Each(func(j int, cell *goquery.Selection) {
			if j >= len(headers) {
				return
			}
			text := strings.TrimSpace(cell.Text())
			if headers[j] == roleKey {
				row[roleKey] = text
				return
			}
			if value, ok := utils.ParseAmount(text); ok {
				row[headers[j]] = value
			} else {
				row[headers[j]] = text
			}
		})
		rows = append(rows, row)
	})

	if headers == nil {
		return nil, errors.MalformedInput("HTML table has no header row", nil)
	}
	return rows, nil
}

func rowRole(i int, row Row) (string, error) {
	role, ok := row[roleKey].(string)
	if !ok || role == "" {
		return "", errors.MalformedInput(fmt.Sprintf("row %d: missing %q", i, roleKey), nil)
	}
	return role, nil
}

// DecodeRoleRecords keeps every numeric column of each row as a band amount.
// Non-numeric columns other than Role are ignored.
func DecodeRoleRecords(rows []Row) ([]models.RoleRecord, error) {
	records := make([]models.RoleRecord, 0, len(rows))
	for i, row := range rows {
		role, err := rowRole(i, row)
		if err != nil {
			return nil, err
		}

		fields := make(map[string]float64, len(row))
		for key, value := range row {
			if key == roleKey {
				continue
			}
			amount, ok := value.(float64)
			if !ok {
				continue
			}
			if amount < 0 {
				return nil, errors.MalformedInput(fmt.Sprintf("row %d: negative amount for %q", i, key), nil)
			}
			fields[key] = amount
		}
		records = append(records, models.RoleRecord{Role: role, Fields: fields})
	}
	return records, nil
}

// FactorDecoder returns a Decoder reading the factor from the column named key.
func FactorDecoder(key string) Decoder[models.FactorRecord] {
	return func(rows []Row) ([]models.FactorRecord, error) {
		records := make([]models.FactorRecord, 0, len(rows))
		for i, row := range rows {
			role, err := rowRole(i, row)
			if err != nil {
				return nil, err
			}
			factor, ok := row[key].(float64)
			if !ok {
				return nil, errors.MalformedInput(fmt.Sprintf("row %d: missing numeric %q", i, key), nil)
			}
			records = append(records, models.FactorRecord{Role: role, Factor: factor})
		}
		return records, nil
	}
}
