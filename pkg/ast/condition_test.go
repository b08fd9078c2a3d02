package ast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"sqlkit/pkg/ast"
)

func TestConditionTree_NoConditionIsEmpty(t *testing.T) {
	assert.True(t, ast.NoCondition().IsEmpty())
}

func TestConditionTree_SingleIsNotEmpty(t *testing.T) {
	leaf := ast.Single(ast.Column{Name: "a"})
	assert.False(t, leaf.IsEmpty())
	assert.Equal(t, ast.TreeSingle, leaf.Op)
}

func TestConditionTree_AndAbsorbsEmptyOperand(t *testing.T) {
	leaf := ast.Single(ast.Column{Name: "a"})
	assert.Equal(t, leaf, ast.And(ast.NoCondition(), leaf))
	assert.Equal(t, leaf, ast.And(leaf, ast.NoCondition()))
}

func TestConditionTree_OrAbsorbsEmptyOperand(t *testing.T) {
	leaf := ast.Single(ast.Column{Name: "a"})
	assert.Equal(t, leaf, ast.Or(ast.NoCondition(), leaf))
	assert.Equal(t, leaf, ast.Or(leaf, ast.NoCondition()))
}

func TestConditionTree_AndOfTwoNonEmptyBuildsTree(t *testing.T) {
	a := ast.Single(ast.Column{Name: "a"})
	b := ast.Single(ast.Column{Name: "b"})
	combined := ast.And(a, b)
	assert.Equal(t, ast.TreeAnd, combined.Op)
	assert.Equal(t, a, *combined.Left)
	assert.Equal(t, b, *combined.Right)
}

func TestConditionTree_NotOnEmptyStaysEmpty(t *testing.T) {
	assert.True(t, ast.Not(ast.NoCondition()).IsEmpty())
}

func TestConditionTree_NotOnNonEmptyNegates(t *testing.T) {
	leaf := ast.Single(ast.Column{Name: "a"})
	negated := ast.Not(leaf)
	assert.Equal(t, ast.TreeNot, negated.Op)
	assert.Equal(t, leaf, *negated.Inner)
}
