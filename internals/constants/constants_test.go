package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectFileTypeFromExt(t *testing.T) {
	cases := map[string]FileType{
		"foto.JPG": FileImage,
		"https://x.supabase.co/storage/v1/object/public/b/p/a.jpeg?token=abc": FileImage,
		"https://x.supabase.co/storage/v1/object/public/b/acta.pdf":           FilePDF,
		"nota.m4a": FileAudio,
		"blob":     FileUnknown,
	}
	for in, want := range cases {
		assert.Equal(t, want, DetectFileTypeFromExt(in), in)
	}
	assert.True(t, MaybeImage("https://host/obj/123"))
	assert.False(t, MaybeImage("https://host/obj/informe.docx"))
}

func TestRoleErrorSupervisor(t *testing.T) {
	assert.Equal(t, "❌ Solo supervisores pueden acceder a el panel.", RoleErrorSupervisor("el panel"))
	assert.Equal(t, []string{"supervisor"}, AdminRoles)
}
