package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShareText(t *testing.T) {
	tests := []struct {
		name string
		info SymbolInfo
		want string
	}{
		{
			name: "all perspectives",
			info: SymbolInfo{
				Name: "Owl",
				Interpretations: &Interpretations{
					Indigenous:    "messenger",
					Cultural:      "wisdom",
					Psychological: "the shadow",
				},
			},
			want: "Owl\n\nIndigenous: messenger\n\nCultural: wisdom\n\nPsychological: the shadow",
		},
		{
			name: "empty optional perspectives",
			info: SymbolInfo{
				Name:            "Owl",
				Interpretations: &Interpretations{Indigenous: "messenger"},
			},
			want: "Owl\n\nIndigenous: messenger",
		},
		{
			name: "legacy meaning",
			info: SymbolInfo{Name: "Raven", Meaning: "change is near"},
			want: "Raven\n\nchange is near",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.info.ShareText())
		})
	}
}

func TestOmen_FlatJSON(t *testing.T) {
	o := Omen{
		SymbolInfo: SymbolInfo{Name: "Owl", History: "ancient"},
		ImageURL:   "https://img.example/owl.png",
		Query:      "owl",
		Timestamp:  1700000000000,
	}

	data, err := json.Marshal(o)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Owl","history":"ancient","imageUrl":"https://img.example/owl.png","query":"owl","timestamp":1700000000000}`, string(data))
}

func TestParseSpiritualPractice(t *testing.T) {
	p, ok := ParseSpiritualPractice("general spirituality")
	assert.True(t, ok)
	assert.Equal(t, PracticeGeneralSpirituality, p)

	_, ok = ParseSpiritualPractice("Pastafarianism")
	assert.False(t, ok)
}

func TestUser_Practice(t *testing.T) {
	var guest *User
	assert.Empty(t, guest.Practice())
	assert.Empty(t, (&User{SpiritualPractice: PracticeNone}).Practice())
	assert.Empty(t, (&User{}).Practice())
	assert.Equal(t, PracticeShinto, (&User{SpiritualPractice: PracticeShinto}).Practice())
}

func TestTheme_Valid(t *testing.T) {
	assert.True(t, ThemeLight.Valid())
	assert.True(t, ThemeSystem.Valid())
	assert.False(t, Theme("sepia").Valid())
	assert.Equal(t, ThemeDark, DefaultTheme)
}
