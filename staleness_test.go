package finassist

import "testing"

func TestGenerations_StaleResultsAreDropped(t *testing.T) {
	var g Generations

	older := g.Next()
	newer := g.Next()

	if !g.Accept(newer) {
		t.Fatal("the newest generation was rejected")
	}
	if g.Accept(older) {
		t.Error("a stale generation was accepted after a newer one resolved")
	}
	if g.Accept(newer) {
		t.Error("the same generation was accepted twice")
	}
}

func TestGenerations_InOrderResultsAllApply(t *testing.T) {
	var g Generations
	for i := 0; i < 5; i++ {
		gen := g.Next()
		if !g.Accept(gen) {
			t.Fatalf("in-order generation %d was rejected", gen)
		}
	}
}
