package gsheet

import (
	"context"

	"github.com/pkg/errors"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

const (
	valueInputOption = "USER_ENTERED"
	insertDataOption = "INSERT_ROWS"
)

// Client appends rows to a Google Sheets spreadsheet.
type Client struct {
	svc           *sheets.Service
	spreadsheetID string
}

// NewClient builds a Sheets client from a service account credentials file.
func NewClient(ctx context.Context, credentialsFile, spreadsheetID string) (*Client, error) {
	svc, err := sheets.NewService(ctx, option.WithCredentialsFile(credentialsFile))
	if err != nil {
		return nil, errors.Wrap(err, "Unable to create sheets service")
	}
	return &Client{svc: svc, spreadsheetID: spreadsheetID}, nil
}

// Append writes the rows below the existing data of the given worksheet.
func (c *Client) Append(worksheet string, rows [][]interface{}) error {
	body := &sheets.ValueRange{Values: rows}
	_, err := c.svc.Spreadsheets.Values.Append(c.spreadsheetID, worksheet, body).
		ValueInputOption(valueInputOption).
		InsertDataOption(insertDataOption).
		Do()
	return errors.Wrapf(err, "Unable to append rows to worksheet (%s)", worksheet)
}
