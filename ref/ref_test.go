package ref_test

import (
	"reflect"
	"testing"

	"github.com/katalvlaran/rcspy/core"
	"github.com/katalvlaran/rcspy/ref"
)

func TestDefault_Forward(t *testing.T) {
	arc := &core.Arc{Res: []float64{1, 2}}
	got := ref.Default{}.Forward([]float64{0, 0}, arc)
	if want := []float64{1, 2}; !reflect.DeepEqual(got, want) {
		t.Fatalf("Forward = %v, want %v", got, want)
	}
}

func TestDefault_Backward(t *testing.T) {
	arc := &core.Arc{Res: []float64{1, 2}}
	got := ref.Default{}.Backward([]float64{4, 0}, arc)
	if want := []float64{3, 2}; !reflect.DeepEqual(got, want) {
		t.Fatalf("Backward = %v, want %v", got, want)
	}
}

func TestDefault_Join(t *testing.T) {
	arc := &core.Arc{Res: []float64{1, 1}}
	maxRes := []float64{10, 10}
	// forward half consumed 2 of resource 0; backward half has 7 of resource-0
	// budget remaining (i.e. consumed 3).
	fwdRes := []float64{2, 0}
	bwdRes := []float64{7, 4}
	got := ref.Default{}.Join(fwdRes, bwdRes, arc, maxRes)
	// forward extends across arc: [3,1]; then add mirrored backward: res0 += (10-7)=3 -> 6; res1 += 4 -> 5
	if want := []float64{6, 5}; !reflect.DeepEqual(got, want) {
		t.Fatalf("Join = %v, want %v", got, want)
	}
}
