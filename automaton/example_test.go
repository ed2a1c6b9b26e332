package automaton_test

import (
	"fmt"
	"log"

	"github.com/katalvlaran/lexfsm/automaton"
	"github.com/katalvlaran/lexfsm/reach"
	"github.com/katalvlaran/lexfsm/vocab"
)

// ExamplePhraseBuilder_Build constrains decoding to mention both a dog and a
// frisbee, in either order.
func ExamplePhraseBuilder_Build() {
	v, err := vocab.NewVocabulary([]string{"a", "dog", "catches", "frisbee"})
	if err != nil {
		log.Fatal(err)
	}
	b, err := automaton.NewPhraseBuilder(v, nil)
	if err != nil {
		log.Fatal(err)
	}

	res, err := b.Build([]string{"dog", "frisbee"})
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("states:", res.States, "candidates:", res.Candidates, "accept:", res.Accept)

	sentence := []string{"a", "dog", "catches", "a", "frisbee"}
	tokens := make([]int, len(sentence))
	for i, w := range sentence {
		tokens[i] = v.TokenID(w)
	}
	ok, err := reach.Accepts(res.Tensor, automaton.StateNone, res.Accept, tokens)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("satisfied:", ok)

	// Output:
	// states: 8 candidates: 2 accept: 6
	// satisfied: true
}

// ExampleNullBuilder shows the unconstrained automaton.
func ExampleNullBuilder() {
	b, err := automaton.NewNullBuilder(10)
	if err != nil {
		log.Fatal(err)
	}
	res, _ := b.Build(nil)
	fmt.Println(res.Tensor.Shape(), res.States, res.Candidates)

	// Output:
	// [1 1 1 10] 1 0
}
