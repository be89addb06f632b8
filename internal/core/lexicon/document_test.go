package lexicon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeValidDocument(t *testing.T) {
	doc, err := Decode("com.example.foo.json", []byte(`{
		"lexicon": 1,
		"id": "com.example.foo",
		"revision": 3,
		"description": "A test lexicon",
		"defs": {"main": {"type": "token"}}
	}`))
	require.NoError(t, err)

	assert.Equal(t, 1, doc.Lexicon)
	assert.Equal(t, "com.example.foo", doc.ID)
	require.NotNil(t, doc.Revision)
	assert.Equal(t, 3, *doc.Revision)
	assert.Equal(t, "A test lexicon", doc.Description)
	assert.Equal(t, "token", doc.Defs["main"]["type"])
}

func TestDecodeParseError(t *testing.T) {
	for _, data := range []string{`{"lexicon": 1,`, `[1, 2]`, `"text"`, ``} {
		_, err := Decode("com.example.foo.json", []byte(data))
		var perr *ParseError
		require.ErrorAs(t, err, &perr, data)
		assert.Equal(t, "com.example.foo.json", perr.File)
	}
}

func TestDecodeVersionMismatch(t *testing.T) {
	cases := []struct {
		data  string
		found any
	}{
		{`{"lexicon": 2, "id": "com.example.foo"}`, float64(2)},
		{`{"lexicon": "1", "id": "com.example.foo"}`, "1"},
		{`{"id": "com.example.foo"}`, nil},
	}
	for _, tc := range cases {
		_, err := Decode("com.example.foo.json", []byte(tc.data))
		var verr *VersionMismatchError
		require.ErrorAs(t, err, &verr, tc.data)
		assert.Equal(t, "com.example.foo.json", verr.File)
		assert.Equal(t, tc.found, verr.Found)
		assert.Contains(t, err.Error(), "com.example.foo.json")
	}
}

func TestDecodeVersionCheckedBeforeID(t *testing.T) {
	_, err := Decode("com.example.foo.json", []byte(`{"lexicon": 2, "id": "com.example.bar"}`))
	var verr *VersionMismatchError
	assert.ErrorAs(t, err, &verr)
}

func TestDecodeIdentifierMismatch(t *testing.T) {
	_, err := Decode("lexicons/com.example.foo.json", []byte(`{"lexicon": 1, "id": "com.example.bar"}`))
	var ierr *IdentifierMismatchError
	require.ErrorAs(t, err, &ierr)
	assert.Equal(t, "com.example.bar", ierr.Found)
	assert.Equal(t, "com.example.foo", ierr.Expected)
	assert.Equal(t, "Lexicon id mismatch in lexicons/com.example.foo.json: id='com.example.bar' expected 'com.example.foo'", err.Error())

	_, err = Decode("com.example.foo.json", []byte(`{"lexicon": 1, "id": 7}`))
	require.ErrorAs(t, err, &ierr)
	assert.Equal(t, "7", ierr.Found)

	_, err = Decode("com.example.foo.json", []byte(`{"lexicon": 1}`))
	require.ErrorAs(t, err, &ierr)
	assert.Equal(t, "", ierr.Found)
}

func TestExpectedID(t *testing.T) {
	assert.Equal(t, "com.example.foo", ExpectedID("/a/b/com.example.foo.json"))
	assert.Equal(t, "com.example.foo", ExpectedID("com.example.foo"))
}

func TestGenericForHandBuiltDocument(t *testing.T) {
	rev := 2
	doc := &Document{
		Lexicon:  Version,
		ID:       "com.example.foo",
		Revision: &rev,
		Defs:     map[string]Def{"main": {"type": "token"}},
	}
	generic, err := doc.Generic()
	require.NoError(t, err)
	assert.Equal(t, float64(1), generic["lexicon"])
	assert.Equal(t, float64(2), generic["revision"])
	assert.NotEmpty(t, doc.source)
}
