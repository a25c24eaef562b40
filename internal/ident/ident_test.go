package ident

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		wantID  uint64
		wantErr bool
	}{
		{name: "合法的ID", input: "42", wantID: 42, wantErr: false},
		{name: "最大的uint64", input: "18446744073709551615", wantID: 18446744073709551615, wantErr: false},
		{name: "空字符串", input: "", wantErr: true},
		{name: "零", input: "0", wantErr: true},
		{name: "负数", input: "-1", wantErr: true},
		{name: "非数字", input: "abc", wantErr: true},
		{name: "带空格", input: " 42", wantErr: true},
		{name: "小数", input: "4.2", wantErr: true},
		{name: "溢出", input: "18446744073709551616", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			id, err := Parse(tc.input)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrInvalid)
				assert.Zero(t, id)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tc.wantID, id)
			}
		})
	}
}
