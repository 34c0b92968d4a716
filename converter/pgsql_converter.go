package converter

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

// PGSQLConverter archives an export run to postgres: one exports row plus its
// flattened session rows and summary rows. Out carries the connection
// credentials.
type PGSQLConverter struct{}

const ResetSequence = "ALTER SEQUENCE exports_id_seq RESTART;"
const DropSummaryRows = "DELETE FROM export_summary;"
const DropSessionRows = "DELETE FROM export_sessions;"
const DropExports = "DELETE FROM exports;"
const InsertExportQuery = "INSERT INTO exports (institution, program, term, mode, generated) VALUES ($1, $2, $3, $4, $5) RETURNING id"
const InsertSessionQuery = "INSERT INTO export_sessions (export_id, day, slot, subject, code, party, room, building, type, credits) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)"
const InsertSummaryQuery = "INSERT INTO export_summary (export_id, code, subject, party, credits, sessions, minutes) VALUES ($1, $2, $3, $4, $5, $6, $7)"

func (p PGSQLConverter) Ext() string {
	return ""
}

func (p PGSQLConverter) Write(b Bundle, out string) error {
	if out == "" {
		return fmt.Errorf("credentials can not be empty")
	}

	conn, err := sqlx.Connect("postgres", out)
	if err != nil {
		return err
	}
	defer conn.Close()

	conn.MustExec(ResetSequence)

	conn.MustExec(DropSummaryRows)
	conn.MustExec(DropSessionRows)
	conn.MustExec(DropExports)

	insertExport, err := conn.Preparex(InsertExportQuery)
	if err != nil {
		return err
	}

	insertSession, err := conn.Preparex(InsertSessionQuery)
	if err != nil {
		return err
	}

	insertSummary, err := conn.Preparex(InsertSummaryQuery)
	if err != nil {
		return err
	}

	var institution, program, term string
	if b.Meta != nil {
		institution, program, term = b.Meta.Institution, b.Meta.Program, b.Meta.Term
	}

	var exportId uint
	scan := insertExport.QueryRowx(institution, program, term, string(b.Mode), b.Generated)
	if err = scan.Scan(&exportId); err != nil {
		return err
	}

	for _, d := range DetailRows(b.Schedule) {
		insertSession.MustExec(exportId, d.Day, d.Slot, d.Subject, d.Code, d.Party, d.Room, d.Building, d.Type, d.Credits)
	}

	for _, r := range b.Summary() {
		insertSummary.MustExec(exportId, r.Code, r.Subject, r.Party, r.Credits, r.Sessions, r.Minutes)
	}

	return nil
}
