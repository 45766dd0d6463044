package sheets

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	gsheets "google.golang.org/api/sheets/v4"
)

// Client implements RowStore against a single Google Sheets spreadsheet.
// Each sheet (tab) of the spreadsheet is one named row sequence.
type Client struct {
	srv           *gsheets.Service
	spreadsheetID string
}

// NewClient builds a Client from a service-account credentials file.
func NewClient(ctx context.Context, credentialsFile, spreadsheetID string) (*Client, error) {
	srv, err := gsheets.NewService(ctx,
		option.WithCredentialsFile(credentialsFile),
		option.WithScopes(gsheets.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}
	return &Client{srv: srv, spreadsheetID: spreadsheetID}, nil
}

// sheetID resolves a sheet title to its numeric id.
// Returns ErrNotFound when no sheet carries the title.
func (c *Client) sheetID(ctx context.Context, title string) (int64, error) {
	doc, err := c.srv.Spreadsheets.Get(c.spreadsheetID).
		Fields("sheets.properties").Context(ctx).Do()
	if err != nil {
		return 0, wrapAPIError(err)
	}
	for _, sh := range doc.Sheets {
		if sh.Properties != nil && sh.Properties.Title == title {
			return sh.Properties.SheetId, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrNotFound, title)
}

func (c *Client) ReadSheet(ctx context.Context, sheet string) ([][]string, error) {
	if _, err := c.sheetID(ctx, sheet); err != nil {
		return nil, err
	}
	resp, err := c.srv.Spreadsheets.Values.Get(c.spreadsheetID, quoteTitle(sheet)).
		Context(ctx).Do()
	if err != nil {
		return nil, wrapAPIError(err)
	}
	rows := make([][]string, len(resp.Values))
	for i, raw := range resp.Values {
		row := make([]string, len(raw))
		for j, cell := range raw {
			row[j] = fmt.Sprint(cell)
		}
		rows[i] = row
	}
	return rows, nil
}

func (c *Client) AppendRows(ctx context.Context, sheet string, rows [][]string) error {
	if _, err := c.sheetID(ctx, sheet); err != nil {
		return err
	}
	_, err := c.srv.Spreadsheets.Values.Append(c.spreadsheetID, quoteTitle(sheet), valueRange(rows)).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).Do()
	return wrapAPIError(err)
}

func (c *Client) InsertRows(ctx context.Context, sheet string, index int64, rows [][]string) error {
	id, err := c.sheetID(ctx, sheet)
	if err != nil {
		return err
	}
	req := &gsheets.BatchUpdateSpreadsheetRequest{
		Requests: []*gsheets.Request{{
			InsertDimension: &gsheets.InsertDimensionRequest{
				Range: &gsheets.DimensionRange{
					SheetId:    id,
					Dimension:  "ROWS",
					StartIndex: index,
					EndIndex:   index + int64(len(rows)),
				},
			},
		}},
	}
	if _, err := c.srv.Spreadsheets.BatchUpdate(c.spreadsheetID, req).Context(ctx).Do(); err != nil {
		return wrapAPIError(err)
	}
	_, err = c.srv.Spreadsheets.Values.Update(c.spreadsheetID, rowRange(sheet, index), valueRange(rows)).
		ValueInputOption("RAW").
		Context(ctx).Do()
	return wrapAPIError(err)
}

func (c *Client) UpdateRow(ctx context.Context, sheet string, index int64, row []string) error {
	if _, err := c.sheetID(ctx, sheet); err != nil {
		return err
	}
	_, err := c.srv.Spreadsheets.Values.Update(c.spreadsheetID, rowRange(sheet, index), valueRange([][]string{row})).
		ValueInputOption("RAW").
		Context(ctx).Do()
	return wrapAPIError(err)
}

func (c *Client) CreateSheet(ctx context.Context, sheet string) error {
	req := &gsheets.BatchUpdateSpreadsheetRequest{
		Requests: []*gsheets.Request{{
			AddSheet: &gsheets.AddSheetRequest{
				Properties: &gsheets.SheetProperties{Title: sheet},
			},
		}},
	}
	_, err := c.srv.Spreadsheets.BatchUpdate(c.spreadsheetID, req).Context(ctx).Do()
	if gerr, ok := err.(*googleapi.Error); ok && gerr.Code == 400 &&
		strings.Contains(gerr.Message, "already exists") {
		return fmt.Errorf("%w: %q", ErrConflict, sheet)
	}
	return wrapAPIError(err)
}

func (c *Client) RenameSheet(ctx context.Context, oldName, newName string) error {
	id, err := c.sheetID(ctx, oldName)
	if err != nil {
		return err
	}
	req := &gsheets.BatchUpdateSpreadsheetRequest{
		Requests: []*gsheets.Request{{
			UpdateSheetProperties: &gsheets.UpdateSheetPropertiesRequest{
				Properties: &gsheets.SheetProperties{SheetId: id, Title: newName},
				Fields:     "title",
			},
		}},
	}
	_, err = c.srv.Spreadsheets.BatchUpdate(c.spreadsheetID, req).Context(ctx).Do()
	return wrapAPIError(err)
}

func (c *Client) DeleteRows(ctx context.Context, sheet string, start, end int64) error {
	if start >= end {
		return nil
	}
	id, err := c.sheetID(ctx, sheet)
	if err != nil {
		return err
	}
	req := &gsheets.BatchUpdateSpreadsheetRequest{
		Requests: []*gsheets.Request{{
			DeleteDimension: &gsheets.DeleteDimensionRequest{
				Range: &gsheets.DimensionRange{
					SheetId:    id,
					Dimension:  "ROWS",
					StartIndex: start,
					EndIndex:   end,
				},
			},
		}},
	}
	_, err = c.srv.Spreadsheets.BatchUpdate(c.spreadsheetID, req).Context(ctx).Do()
	return wrapAPIError(err)
}

// quoteTitle quotes a sheet title for use in an A1 range reference.
func quoteTitle(title string) string {
	return "'" + strings.ReplaceAll(title, "'", "''") + "'"
}

// rowRange builds an A1 reference anchored at the given 0-based row index.
func rowRange(sheet string, index int64) string {
	return fmt.Sprintf("%s!A%d", quoteTitle(sheet), index+1)
}

func valueRange(rows [][]string) *gsheets.ValueRange {
	values := make([][]interface{}, len(rows))
	for i, row := range rows {
		cells := make([]interface{}, len(row))
		for j, cell := range row {
			cells[j] = cell
		}
		values[i] = cells
	}
	return &gsheets.ValueRange{Values: values}
}

// wrapAPIError maps googleapi failures onto the package error taxonomy,
// preserving the original error text.
func wrapAPIError(err error) error {
	if err == nil {
		return nil
	}
	if gerr, ok := err.(*googleapi.Error); ok && gerr.Code == 404 {
		return fmt.Errorf("%w: %v", ErrNotFound, err)
	}
	return fmt.Errorf("%w: %v", ErrUnavailable, err)
}
