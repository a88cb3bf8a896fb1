package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	LoginName string `validate:"required,max=255,loginname"`
	Email     string `validate:"required,email"`
	Text      string `validate:"min=10,max=5000"`
}

func valid() sampleRequest {
	return sampleRequest{
		LoginName: "emuster_42",
		Email:     "emuster@stud.uni-heidelberg.de",
		Text:      "long enough to pass",
	}
}

func TestStruct(t *testing.T) {
	require.NoError(t, Struct(valid()))
}

func TestStructLoginName(t *testing.T) {
	for _, bad := range []string{"e muster", "e-muster", "e.muster", "emuster!"} {
		req := valid()
		req.LoginName = bad
		err := Struct(req)
		require.Error(t, err, "login name %q should be rejected", bad)
		assert.Contains(t, err.Error(), "word characters")
	}
}

func TestStructCollectsAllFailures(t *testing.T) {
	req := sampleRequest{LoginName: "e muster", Email: "not-an-email", Text: "short"}
	err := Struct(req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LoginName")
	assert.Contains(t, err.Error(), "Email")
	assert.Contains(t, err.Error(), "Text")
}
