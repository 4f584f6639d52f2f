package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistered_AllModulesHaveCatalogEntries(t *testing.T) {
	for _, m := range Registered() {
		t.Run(string(m), func(t *testing.T) {
			assert.True(t, IsRegistered(m))

			req := Requirements(m)
			assert.NotEmpty(t, req.Focus)
			assert.NotEmpty(t, req.Requirements)
			assert.NotEmpty(t, req.Regulations)

			tpl := Template(m)
			assert.NotEmpty(t, tpl.Title)
			assert.NotEmpty(t, tpl.Sections)

			fields := Interview(m)
			assert.NotEmpty(t, fields)
		})
	}
}

func TestUnknownModuleType_FallsBackToPolicy(t *testing.T) {
	unknown := ModuleType("does-not-exist")

	assert.False(t, IsRegistered(unknown))
	assert.Equal(t, Requirements(ModulePolicy), Requirements(unknown))
	assert.Equal(t, Template(ModulePolicy).Title, Template(unknown).Title)
	assert.Equal(t, Regulations(ModulePolicy), Regulations(unknown))
	assert.Equal(t, Interview(ModulePolicy), Interview(unknown))
}

func TestRequirements_ReturnsIndependentCopies(t *testing.T) {
	first := Requirements(ModuleDPIA)
	first.Requirements[0] = "mutated"
	first.Regulations[0] = "mutated"

	second := Requirements(ModuleDPIA)
	assert.NotEqual(t, "mutated", second.Requirements[0])
	assert.NotEqual(t, "mutated", second.Regulations[0])
}

func TestRegulations_ReturnsIndependentCopies(t *testing.T) {
	first := Regulations(ModuleRoPA)
	require.NotEmpty(t, first)
	first[0] = "mutated"

	assert.NotEqual(t, "mutated", Regulations(ModuleRoPA)[0])
}

func TestInterview_StartsWithCommonFields(t *testing.T) {
	for _, m := range Registered() {
		fields := Interview(m)
		require.GreaterOrEqual(t, len(fields), 5, "module %s", m)

		assert.Equal(t, "title", fields[0].Name)
		assert.True(t, fields[0].Required)
		assert.Equal(t, "owner", fields[1].Name)
		assert.Equal(t, "summary", fields[2].Name)
	}
}

func TestInterview_FieldNamesUnique(t *testing.T) {
	for _, m := range Registered() {
		seen := map[string]bool{}
		for _, f := range Interview(m) {
			assert.False(t, seen[f.Name], "module %s duplicates field %s", m, f.Name)
			seen[f.Name] = true
		}
	}
}

func TestInterview_SelectFieldsHaveOptions(t *testing.T) {
	for _, m := range Registered() {
		for _, f := range Interview(m) {
			if f.Type == FieldSelect {
				assert.NotEmpty(t, f.Options, "module %s field %s", m, f.Name)
			}
		}
	}
}

func TestDPIARegulations_IncludeUUPDP(t *testing.T) {
	regs := Regulations(ModuleDPIA)
	assert.Contains(t, regs[0], "UU PDP")
}
