package validate_test

import (
	"testing"

	"github.com/ardanlabs/nicecoin/business/sys/validate"
	"github.com/ardanlabs/nicecoin/foundation/blockchain/signature"
)

const (
	success = "✓"
	failed  = "✗"
)

type transfer struct {
	From  string `json:"from" validate:"required,account"`
	To    string `json:"to" validate:"required"`
	Value uint64 `json:"value" validate:"gt=0"`
}

func Test_Check(t *testing.T) {
	kp, err := signature.GenerateKeyPair()
	if err != nil {
		t.Fatalf("Should be able to generate a key pair: %s", err)
	}
	pubID := kp.PublicID()

	tt := []struct {
		name   string
		val    transfer
		fields []string
	}{
		{name: "valid", val: transfer{From: pubID, To: "minerA", Value: 10}},
		{name: "missing", val: transfer{}, fields: []string{"from", "to", "value"}},
		{name: "badaccount", val: transfer{From: "minerA", To: "minerB", Value: 1}, fields: []string{"from"}},
	}

	t.Log("Given the need to validate request models.")
	{
		for testID, tst := range tt {
			f := func(t *testing.T) {
				t.Logf("\tTest %d:\tWhen handling a %s model.", testID, tst.name)
				{
					err := validate.Check(tst.val)
					if len(tst.fields) == 0 {
						if err != nil {
							t.Fatalf("\t%s\tTest %d:\tShould pass validation: %s", failed, testID, err)
						}
						t.Logf("\t%s\tTest %d:\tShould pass validation.", success, testID)
						return
					}

					if !validate.IsFieldErrors(err) {
						t.Fatalf("\t%s\tTest %d:\tShould get field errors: %v", failed, testID, err)
					}
					t.Logf("\t%s\tTest %d:\tShould get field errors.", success, testID)

					fields := validate.GetFieldErrors(err).Fields()
					for _, name := range tst.fields {
						if _, exists := fields[name]; !exists {
							t.Fatalf("\t%s\tTest %d:\tShould see an error for %q: %v", failed, testID, name, fields)
						}
					}
					t.Logf("\t%s\tTest %d:\tShould see an error for each bad field.", success, testID)
				}
			}

			t.Run(tst.name, f)
		}
	}
}
