package logictest

import "testing"

import "github.com/stretchr/testify/assert"

func TestUnifyAtoms(t *testing.T) {
	s, ok := unify(Atom{Name: "i32"}, Atom{Name: "i32"}, Subst{})
	assert.True(t, ok)
	assert.Empty(t, s)

	_, ok = unify(Atom{Name: "i32"}, Atom{Name: "u32"}, Subst{})
	assert.False(t, ok)
}

func TestUnifyVarBindsAndWalks(t *testing.T) {
	v := Var{ID: 1}
	s, ok := unify(v, Atom{Name: "i32"}, Subst{})
	assert.True(t, ok)
	assert.Equal(t, Atom{Name: "i32"}, walk(v, s))
}

func TestUnifyDoesNotMutateInput(t *testing.T) {
	s0 := Subst{}
	v := Var{ID: 0}
	s1, ok := unify(v, Atom{Name: "a"}, s0)
	assert.True(t, ok)
	assert.Empty(t, s0, "unify must not mutate its input substitution")
	assert.NotEmpty(t, s1)
}

func TestUnifyCompoundRecurses(t *testing.T) {
	a := Compound{Tag: "Vec", Arg: Atom{Name: "i32"}}
	b := Compound{Tag: "Vec", Arg: Var{ID: 0}}
	s, ok := unify(a, b, Subst{})
	assert.True(t, ok)
	assert.Equal(t, Atom{Name: "i32"}, walk(Var{ID: 0}, s))
}

func TestUnifyCompoundTagMismatchFails(t *testing.T) {
	a := Compound{Tag: "Vec", Arg: Atom{Name: "i32"}}
	b := Compound{Tag: "Box", Arg: Atom{Name: "i32"}}
	_, ok := unify(a, b, Subst{})
	assert.False(t, ok)
}

func TestUnifyArgsBothNilSucceedsTrivially(t *testing.T) {
	s, ok := unifyArgs(nil, nil, Subst{})
	assert.True(t, ok)
	assert.Empty(t, s)
}

func TestUnifyArgsArityMismatchFails(t *testing.T) {
	_, ok := unifyArgs(Atom{Name: "i32"}, nil, Subst{})
	assert.False(t, ok)
	_, ok = unifyArgs(nil, Atom{Name: "i32"}, Subst{})
	assert.False(t, ok)
}

func TestBindSameVariableIsNoop(t *testing.T) {
	s := Subst{}
	out := bind(Var{ID: 0}, Var{ID: 0}, s)
	assert.Empty(t, out)
}

func TestSubstCloneIsIndependent(t *testing.T) {
	s := Subst{0: Atom{Name: "a"}}
	c := s.clone()
	c[1] = Atom{Name: "b"}
	assert.Len(t, s, 1)
	assert.Len(t, c, 2)
}
