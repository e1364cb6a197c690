package values_test

import (
	"testing"

	"styl/css/values"
)

func TestParseShadow(t *testing.T) {
	base := values.DefaultBaseline()
	black := values.RGB(0, 0, 0)
	tests := []struct {
		in      string
		want    values.Shadow
		wantErr bool
	}{
		{in: "2px 3px", want: values.Shadow{Dx: 2, Dy: 3, Color: black}},
		{in: "2px 3px 4px", want: values.Shadow{Dx: 2, Dy: 3, Blur: 4, Color: black}},
		{in: "2px 3px 4px 5px", want: values.Shadow{Dx: 2, Dy: 3, Blur: 4, Spread: 5, Color: black}},
		{in: "2px 3px red", want: values.Shadow{Dx: 2, Dy: 3, Color: values.RGB(255, 0, 0)}},
		{in: "2px 3px 4px rgba(0,0,255,0.5)", want: values.Shadow{Dx: 2, Dy: 3, Blur: 4, Color: values.Color{B: 255, A: 128}}},
		{in: "1em 1em", want: values.Shadow{Dx: 16, Dy: 16, Color: black}},
		{in: "2px", wantErr: true},
		{in: "red", wantErr: true},
		{in: "2px 3px nosuchcolor", wantErr: true},
		{in: "2px 3px 4px 5px 6px", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := values.ParseShadow(tt.in, base)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseShadow(%q) = %+v, want error", tt.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseShadow(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseShadow(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}
