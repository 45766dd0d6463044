package core

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"path"
	"strings"

	"github.com/RamezHany/test-form-1-lod-logo-main/internal/tablestore"
)

// headerIndex maps column names to their position in a header row.
func headerIndex(header []string) map[string]int {
	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[name] = i
	}
	return idx
}

// settingsRow returns the offset (0 = header) and contents of the first
// settings row of a table, or -1 when the table has none. Rows with no
// populated cells are skipped so a blank row cannot shadow real metadata.
func settingsRow(rows [][]string) (int, []string) {
	if len(rows) == 0 {
		return -1, nil
	}
	header := rows[0]
	for i := 1; i < len(rows); i++ {
		populated := false
		for _, c := range rows[i] {
			if strings.TrimSpace(c) != "" {
				populated = true
				break
			}
		}
		if populated && tablestore.IsSettingsRow(header, rows[i]) {
			return i, rows[i]
		}
	}
	return -1, nil
}

// eventFromTable builds the Event view for one table of a company sheet.
func eventFromTable(name string, rows [][]string, companyStatus string) Event {
	ev := Event{
		ID:            name,
		Name:          name,
		Status:        StatusEnabled,
		CompanyStatus: companyStatus,
	}
	if len(rows) == 0 {
		return ev
	}
	header := rows[0]
	idx := headerIndex(header)

	if _, settings := settingsRow(rows); settings != nil {
		if i, ok := idx[tablestore.ColImage]; ok {
			ev.Image = cell(settings, i)
		}
		if i, ok := idx[tablestore.ColDescription]; ok {
			ev.Description = cell(settings, i)
		}
		if i, ok := idx[tablestore.ColDate]; ok {
			ev.Date = cell(settings, i)
		}
		if i, ok := idx[tablestore.ColStatus]; ok {
			ev.Status = statusOrDefault(cell(settings, i))
		}
	}

	for i := 1; i < len(rows); i++ {
		if !tablestore.IsSettingsRow(header, rows[i]) {
			ev.Registrations++
		}
	}
	return ev
}

// ListEvents returns every event of a company with its metadata and
// registration count. Counting re-reads each table, which is O(tables x
// rows) per request; tenant sheets are small enough for that.
func (s *Service) ListEvents(ctx context.Context, companyName string) ([]Event, error) {
	company, err := s.companyByName(ctx, companyName)
	if err != nil {
		return nil, err
	}
	if company.Status == StatusDisabled {
		return nil, fmt.Errorf("%w: company %q is disabled", ErrForbidden, company.Name)
	}

	tables, err := s.tables.List(ctx, company.Name)
	if err != nil {
		return nil, storeErr(err)
	}

	events := make([]Event, 0, len(tables))
	for _, t := range tables {
		rows, err := s.tables.Read(ctx, company.Name, t.Name)
		if err != nil {
			return nil, storeErr(err)
		}
		events = append(events, eventFromTable(t.Name, rows, company.Status))
	}
	return events, nil
}

// CreateEvent creates a new table in the company's sheet: marker row, header
// row, then a settings row carrying the event metadata. A header-only table
// left behind by a failed settings append is tolerated by readers and treated
// as enabled with empty metadata.
func (s *Service) CreateEvent(ctx context.Context, in CreateEventInput) (CreatedEvent, error) {
	if strings.TrimSpace(in.EventName) == "" {
		return CreatedEvent{}, invalidf("event name is required")
	}
	if strings.TrimSpace(in.Description) == "" {
		return CreatedEvent{}, invalidf("event description is required")
	}
	if strings.TrimSpace(in.Date) == "" {
		return CreatedEvent{}, invalidf("event date is required")
	}

	company, err := s.companyByName(ctx, in.CompanyName)
	if err != nil {
		return CreatedEvent{}, err
	}
	if company.Status == StatusDisabled {
		return CreatedEvent{}, fmt.Errorf("%w: company %q is disabled", ErrForbidden, company.Name)
	}

	imageURL := ""
	if len(in.ImageData) > 0 {
		imageURL, err = s.files.Upload(ctx, company.Name, in.ImageName, in.ImageData)
		if err != nil {
			return CreatedEvent{}, storeErr(err)
		}
	}

	if err := s.tables.Create(ctx, company.Name, in.EventName, EventHeader); err != nil {
		return CreatedEvent{}, storeErr(err)
	}

	settings := make([]string, len(EventHeader))
	idx := headerIndex(EventHeader)
	settings[idx[tablestore.ColImage]] = imageURL
	settings[idx[tablestore.ColDescription]] = in.Description
	settings[idx[tablestore.ColDate]] = in.Date
	settings[idx[tablestore.ColStatus]] = StatusEnabled
	if err := s.tables.AppendRow(ctx, company.Name, in.EventName, settings); err != nil {
		return CreatedEvent{}, storeErr(err)
	}

	return CreatedEvent{
		ID:              in.EventName,
		RegistrationURL: s.registrationURL(company.Name, in.EventName),
	}, nil
}

// registrationURL builds the public link for an event. The event name is the
// URL segment, so it is escaped here and matched case-insensitively on the
// way back in.
func (s *Service) registrationURL(companyName, eventName string) string {
	return fmt.Sprintf("%s/%s/%s",
		strings.TrimRight(s.publicBaseURL, "/"),
		url.PathEscape(companyName),
		url.PathEscape(eventName),
	)
}

// SetEventStatus enables or disables registration for an event. Older tables
// created before the EventStatus column exist get the column appended to the
// header first; header mutation is append-only, never destructive.
func (s *Service) SetEventStatus(ctx context.Context, companyName, eventID, status string) error {
	if status != StatusEnabled && status != StatusDisabled {
		return invalidf("status must be %q or %q", StatusEnabled, StatusDisabled)
	}

	company, err := s.companyByName(ctx, companyName)
	if err != nil {
		return err
	}

	table, err := s.tables.Find(ctx, company.Name, eventID)
	if err != nil {
		return storeErr(err)
	}
	rows, err := s.tables.Read(ctx, company.Name, table.Name)
	if err != nil {
		return storeErr(err)
	}
	if len(rows) == 0 {
		return fmt.Errorf("%w: event %q has no header row", ErrNotFound, table.Name)
	}

	header := append([]string(nil), rows[0]...)
	statusCol, ok := headerIndex(header)[tablestore.ColStatus]
	if !ok {
		header = append(header, tablestore.ColStatus)
		statusCol = len(header) - 1
		if err := s.tables.UpdateRow(ctx, company.Name, table.Name, 0, header); err != nil {
			return storeErr(err)
		}
	}

	offset, settings := settingsRow(rows)
	if offset < 0 {
		// Partial event creation left no settings row; add one now.
		settings = make([]string, len(header))
		settings[statusCol] = status
		return storeErr(s.tables.AppendRow(ctx, company.Name, table.Name, settings))
	}

	updated := append([]string(nil), settings...)
	for len(updated) <= statusCol {
		updated = append(updated, "")
	}
	updated[statusCol] = status
	return storeErr(s.tables.UpdateRow(ctx, company.Name, table.Name, int64(offset), updated))
}

// DeleteEvent removes an event's table entirely. Lookup is exact-match only.
// The event image, if any, is removed from the file host best-effort.
func (s *Service) DeleteEvent(ctx context.Context, companyName, eventID string) error {
	company, err := s.companyByName(ctx, companyName)
	if err != nil {
		return err
	}

	imageURL := ""
	if rows, err := s.tables.Read(ctx, company.Name, eventID); err == nil {
		if _, settings := settingsRow(rows); settings != nil {
			if i, ok := headerIndex(rows[0])[tablestore.ColImage]; ok {
				imageURL = cell(settings, i)
			}
		}
	}

	if err := s.tables.Delete(ctx, company.Name, eventID); err != nil {
		return storeErr(err)
	}

	if imageURL != "" {
		if err := s.files.Delete(ctx, company.Name, path.Base(imageURL)); err != nil {
			slog.Warn("event image cleanup failed", "company", company.Name, "event", eventID, "error", err)
		}
	}
	return nil
}

// ListRegistrations returns the registrant rows of an event, settings rows
// filtered out. Headers cover the registrant columns only; the National ID
// column is included for admin callers exclusively.
func (s *Service) ListRegistrations(ctx context.Context, companyName, eventID string, callerIsAdmin bool) (RegistrationsView, error) {
	company, err := s.companyByName(ctx, companyName)
	if err != nil {
		return RegistrationsView{}, err
	}

	table, err := s.tables.Find(ctx, company.Name, eventID)
	if err != nil {
		return RegistrationsView{}, storeErr(err)
	}
	rows, err := s.tables.Read(ctx, company.Name, table.Name)
	if err != nil {
		return RegistrationsView{}, storeErr(err)
	}
	if len(rows) == 0 {
		return RegistrationsView{Headers: []string{}, Rows: [][]string{}}, nil
	}

	header := rows[0]
	var keep []int
	for i, name := range header {
		switch {
		case name == tablestore.ColImage, name == tablestore.ColDescription,
			name == tablestore.ColDate, name == tablestore.ColStatus:
			// metadata columns belong to the settings row, not registrants
		case name == "National ID" && !callerIsAdmin:
		default:
			keep = append(keep, i)
		}
	}

	view := RegistrationsView{Headers: make([]string, len(keep)), Rows: [][]string{}}
	for i, col := range keep {
		view.Headers[i] = header[col]
	}
	for _, row := range rows[1:] {
		if tablestore.IsSettingsRow(header, row) {
			continue
		}
		projected := make([]string, len(keep))
		for i, col := range keep {
			projected[i] = cell(row, col)
		}
		view.Rows = append(view.Rows, projected)
	}
	return view, nil
}
