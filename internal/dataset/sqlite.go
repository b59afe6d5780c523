package dataset

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// LoadSQLite reads every row of opts.Table from the SQLite database at path.
// The database is opened read-only so the source is never modified.
func LoadSQLite(ctx context.Context, path string, opts Options) (*Dataset, error) {
	opts = opts.withDefaults()
	if _, err := os.Stat(path); err != nil {
		return nil, &ErrMissingDataSource{Path: path, Err: err}
	}

	db, err := sql.Open("sqlite", "file:"+path+"?mode=ro")
	if err != nil {
		return nil, &ErrMissingDataSource{Path: path, Err: err}
	}
	defer db.Close()

	header, rows, err := queryTable(ctx, db, opts.Table)
	if err != nil {
		return nil, &ErrMissingDataSource{Path: path, Err: err}
	}
	return FromTable(path, header, rows, opts)
}

func queryTable(ctx context.Context, db *sql.DB, table string) ([]string, [][]string, error) {
	query := fmt.Sprintf(`SELECT * FROM %s`, quoteIdent(table))
	rs, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, nil, fmt.Errorf("query %s: %w", table, err)
	}
	defer rs.Close()

	header, err := rs.Columns()
	if err != nil {
		return nil, nil, fmt.Errorf("columns of %s: %w", table, err)
	}

	var rows [][]string
	for rs.Next() {
		values := make([]any, len(header))
		dest := make([]any, len(header))
		for i := range values {
			dest[i] = &values[i]
		}
		if err := rs.Scan(dest...); err != nil {
			return nil, nil, fmt.Errorf("scan %s: %w", table, err)
		}
		row := make([]string, len(values))
		for i, v := range values {
			row[i] = cellString(v)
		}
		rows = append(rows, row)
	}
	if err := rs.Err(); err != nil {
		return nil, nil, fmt.Errorf("iterate %s: %w", table, err)
	}
	return header, rows, nil
}

func cellString(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case []byte:
		return string(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(x)
	case time.Time:
		return x.Format(time.RFC3339)
	default:
		return fmt.Sprint(x)
	}
}

func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
