package srwr

import (
	"reflect"
	"testing"
)

func TestSortResults(t *testing.T) {
	actual := []Result{
		{Node: 3, Score: 0.2},
		{Node: 0, Score: -0.5},
		{Node: 2, Score: 0.2},
		{Node: 1, Score: 0.7},
		{Node: 4, Score: 0},
	}
	expected := []Result{
		{Node: 1, Score: 0.7},
		{Node: 2, Score: 0.2},
		{Node: 3, Score: 0.2},
		{Node: 4, Score: 0},
		{Node: 0, Score: -0.5},
	}

	SortResults(actual)
	if reflect.DeepEqual(actual, expected) != true {
		t.Error("Expected", expected, "but got", actual)
	}

	// sorting a sorted list changes nothing
	again := append([]Result(nil), actual...)
	SortResults(again)
	if reflect.DeepEqual(again, actual) != true {
		t.Error("Expected", actual, "but got", again)
	}
}

func TestProcessResults(t *testing.T) {
	state := State{
		P:   []float64{0.1, 0.5, 0.3},
		N:   []float64{0.2, 0, 0.1},
		Net: []float64{-0.1, 0.5, 0.2},
	}

	expected := []Result{
		{Node: 1, Score: 0.5, PRank: 0.5, NRank: 0},
		{Node: 2, Score: 0.2, PRank: 0.3, NRank: 0.1},
		{Node: 0, Score: -0.1, PRank: 0.1, NRank: 0.2},
	}
	actual := processResults(state)
	if reflect.DeepEqual(actual, expected) != true {
		t.Error("Expected", expected, "but got", actual)
	}
}
