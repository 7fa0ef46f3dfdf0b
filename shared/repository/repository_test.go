package repository

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

type auditFields struct {
	CreatedBy string `db:"created_by"`
}

type visitRow struct {
	ID       string `db:"id"`
	SlotID   string `db:"slot_id"`
	SlotZip  string `db:"slot_zip" table:"slots" column:"zip"`
	Internal string
	auditFields
}

func TestGetColumns(t *testing.T) {
	columns, insert := getColumns("visits", reflect.TypeOf(visitRow{}))

	assert.Equal(t, []string{"id", "slot_id", "created_by"}, insert)
	assert.Equal(t, []column{
		{name: "id", table: "visits"},
		{name: "slot_id", table: "visits"},
		{name: "zip", table: "slots", alias: "slot_zip"},
		{name: "created_by", table: "visits"},
	}, columns)
}

func TestSelectList(t *testing.T) {
	repo := Repository[visitRow]{table: "visits"}
	repo.columns, repo.InsertColumns = getColumns("visits", reflect.TypeOf(visitRow{}))

	assert.Equal(t, "visits.id, visits.slot_id, slots.zip AS slot_zip, visits.created_by", repo.selectList(nil))
	assert.Equal(t, "visits.id, slots.zip AS slot_zip", repo.selectList([]string{"id", "zip"}))
}

func TestBuildInsertQuery(t *testing.T) {
	repo := Repository[visitRow]{table: "visits", InsertColumns: []string{"id", "slot_id"}}

	assert.Equal(t, "INSERT INTO visits (id, slot_id) VALUES (:id, :slot_id)", repo.buildInsertQuery())
}

func TestChunkRows(t *testing.T) {
	tests := []struct {
		name string
		rows []int
		size int
		want [][]int
	}{
		{name: "fits in one", rows: []int{1, 2, 3}, size: 5, want: [][]int{{1, 2, 3}}},
		{name: "exact split", rows: []int{1, 2, 3, 4}, size: 2, want: [][]int{{1, 2}, {3, 4}}},
		{name: "remainder", rows: []int{1, 2, 3, 4, 5}, size: 2, want: [][]int{{1, 2}, {3, 4}, {5}}},
		{name: "zero size", rows: []int{1, 2}, size: 0, want: [][]int{{1, 2}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, chunkRows(tt.rows, tt.size))
		})
	}
}

func TestRowsPerStatement(t *testing.T) {
	repo := Repository[visitRow]{InsertColumns: make([]string, 15)}

	assert.Equal(t, maxBindParams/15, repo.rowsPerStatement())
}
