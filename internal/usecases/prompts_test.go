package usecases

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSolvePrompts(t *testing.T) {
	p, err := loadSolvePrompts()
	require.NoError(t, err)

	assert.Contains(t, p.KnowledgeSystem, "知识点")
	assert.Contains(t, p.SemanticSystem, "语义情境")
	assert.NotEmpty(t, p.SolveSystem)
	assert.Equal(t, "【题目】", p.QuestionLabel)
	assert.Equal(t, "【涉及知识点】", p.KnowledgeLabel)
	assert.Equal(t, "【语义情境】", p.SemanticLabel)
	assert.Equal(t, "请根据以上题目与标注信息，给出详细解题过程与答案。", p.ClosingInstruction)
	assert.Equal(t, "、", p.TagSeparator)
	assert.Equal(t, "You are a helpful assistant. Reply only with the number 2.", p.ConnectionTestSystem)
	assert.Equal(t, "1+1=?", p.ConnectionTestUser)
}
