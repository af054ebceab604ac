package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAirplaneCapacity(t *testing.T) {
	airplane := &Airplane{Rows: 10, SeatsInRow: 6}
	assert.Equal(t, 60, airplane.Capacity())

	single := &Airplane{Rows: 1, SeatsInRow: 1}
	assert.Equal(t, 1, single.Capacity())
}

func TestCrewFullName(t *testing.T) {
	crew := &Crew{FirstName: "Amelia", LastName: "Earhart"}
	assert.Equal(t, "Amelia Earhart", crew.FullName())
}
