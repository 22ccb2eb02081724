package igdb

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQueryBuild(t *testing.T) {
	q := Query{
		Fields: "name",
		Where:  "rating > 80",
		Limit:  5,
	}

	assert.Equal(t, "fields name; where rating > 80; limit 5;", q.Build())
}

func TestQueryBuildClauseOrder(t *testing.T) {
	q := Query{
		Fields: "name, rating",
		Where:  "cover != null",
		Sort:   "rating desc",
		Limit:  10,
		Offset: 40,
		Search: "zelda",
	}

	assert.Equal(t,
		`fields name, rating; where cover != null; sort rating desc; limit 10; offset 40; search "zelda";`,
		q.Build())
}

func TestQueryBuildFieldsOnly(t *testing.T) {
	q := Query{Fields: "id, name"}

	assert.Equal(t, "fields id, name;", q.Build())
}

func TestQueryBuildOmitsZeroOffset(t *testing.T) {
	q := Query{Fields: "name", Offset: 0, Limit: 3}

	assert.Equal(t, "fields name; limit 3;", q.Build())
}
