package marker

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKind_String(t *testing.T) {
	assert.Equal(t, "Step", KindStep.String())
	assert.Equal(t, "AfterStep", KindAfterStep.String())
	assert.Equal(t, "DocStringType", KindDocStringType.String())
	assert.Equal(t, "Kind(99)", Kind(99).String())
}

func TestKinds(t *testing.T) {
	kinds := Kinds()
	assert.Len(t, kinds, 11)
	assert.Equal(t, KindStep, kinds[0])
	assert.Equal(t, KindDocStringType, kinds[len(kinds)-1])
	for _, k := range kinds {
		assert.NotContains(t, k.String(), "Kind(")
	}
}

func TestStepMarkers(t *testing.T) {
	testCases := []struct {
		marker  Expressioner
		keyword string
	}{
		{Given{Value: "a"}, "Given"},
		{When{Value: "a"}, "When"},
		{Then{Value: "a"}, "Then"},
		{And{Value: "a"}, "And"},
		{But{Value: "a"}, "But"},
		{Step{Value: "a"}, "*"},
	}

	for _, tc := range testCases {
		t.Run(tc.keyword, func(t *testing.T) {
			assert.Equal(t, KindStep, tc.marker.Kind())
			assert.Equal(t, "a", tc.marker.Expression())
			kw, ok := tc.marker.(interface{ Keyword() string })
			if assert.True(t, ok) {
				assert.Equal(t, tc.keyword, kw.Keyword())
			}
		})
	}
}

func TestHookMarkers(t *testing.T) {
	testCases := []struct {
		marker Hook
		kind   Kind
	}{
		{Before{Value: "@db", Order: 1}, KindBefore},
		{After{Value: "@db", Order: 1}, KindAfter},
		{BeforeStep{Value: "@db", Order: 1}, KindBeforeStep},
		{AfterStep{Value: "@db", Order: 1}, KindAfterStep},
	}

	for _, tc := range testCases {
		t.Run(tc.kind.String(), func(t *testing.T) {
			assert.Equal(t, tc.kind, tc.marker.Kind())
			assert.Equal(t, "@db", tc.marker.TagExpression())
			assert.Equal(t, 1, tc.marker.HookOrder())
		})
	}
}
