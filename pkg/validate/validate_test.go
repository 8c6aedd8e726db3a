package validate_test

import (
	"testing"

	"github.com/Astemirdum/library-catalog/pkg/validate"
	"github.com/stretchr/testify/require"
)

func TestCustomValidator_Validate(t *testing.T) {
	t.Parallel()
	type req struct {
		Title  string `validate:"notblank"`
		Gender string `validate:"required,oneof=FEMALE MALE FLUID"`
	}
	tests := []struct {
		name    string
		in      req
		wantErr bool
	}{
		{name: "ok", in: req{Title: "The Hobbit", Gender: "FLUID"}},
		{name: "blank title", in: req{Title: "   ", Gender: "MALE"}, wantErr: true},
		{name: "unknown gender", in: req{Title: "Dune", Gender: "OTHER"}, wantErr: true},
	}
	v := validate.NewCustomValidator()
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := v.Validate(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}
