package report

import (
	"testing"

	"github.com/bytedance/sonic"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"ptiadmin_backend/internals/features/inspections/formschema"
)

func TestBuildPreventiveMaintenanceScenario(t *testing.T) {
	data := map[string]any{
		"formData":      map[string]any{"idSitio": "X1"},
		"checklistData": map[string]any{},
	}
	sm := Build(formschema.Classify("preventive-maintenance"), data, registry)

	datos, ok := sm.Get("datos")
	require.True(t, ok)
	assert.Equal(t, "📋 Datos Generales", datos.Title)
	assert.Equal(t, []FieldValue{{Label: "Id Sitio", Value: "X1"}}, datos.Fields)

	// form sections without answers are left out
	for _, id := range []string{"torre", "direccion", "acceso", "electrico", "cierre"} {
		assert.False(t, sm.Has(id), id)
	}

	fs, _ := registry.Schema(formschema.Maintenance)
	for _, sec := range fs.Sections {
		if sec.Kind != formschema.KindChecklist {
			continue
		}
		got, ok := sm.Get(sec.ID)
		require.True(t, ok, sec.ID)
		require.Len(t, got.Rows, len(sec.Items), sec.ID)
		for i, row := range got.Rows {
			assert.Equal(t, sec.Items[i].ID, row.Number)
			assert.Equal(t, Pending, row.Status)
			assert.Empty(t, row.Value)
		}
	}
}

func TestChecklistRowCountIsSchemaDriven(t *testing.T) {
	inputs := []map[string]any{
		{"items": map[string]any{}},
		{"siteInfo": map[string]any{"idSitio": "A"}},
		{"items": "broken"},
		{"items": map[string]any{"acc-1": map[string]any{"status": "malo", "observation": "Bache"}, "zzz": map[string]any{"status": "bueno"}}},
	}
	fs, _ := registry.Schema(formschema.Inspection)
	for _, data := range inputs {
		sm := Build(formschema.Inspection, data, registry)
		for _, sec := range fs.Sections {
			if sec.Kind != formschema.KindChecklist {
				continue
			}
			got, ok := sm.Get(sec.ID)
			require.True(t, ok)
			assert.Len(t, got.Rows, len(sec.Items))
		}
	}
}

func TestChecklistAnsweredRows(t *testing.T) {
	sm := Build(formschema.Maintenance, map[string]any{
		"checklistData": map[string]any{
			"3.4": map[string]any{"status": "regular", "value": "4.2", "observation": "Alta"},
			"3.1": map[string]any{"observation": "Sin barra"},
			"3.2": map[string]any{"status": "excelente"},
		},
	}, registry)

	tierra, ok := sm.Get("chk-tierra")
	require.True(t, ok)
	want := []ChecklistRow{
		{Number: "3.1", Label: "Conexiones de la barra de tierra", Status: Placeholder, Observation: "Sin barra"},
		{Number: "3.2", Label: "Continuidad del anillo perimetral", Status: "excelente"},
		{Number: "3.3", Label: "Estado del pararrayos", Status: Pending},
		{Number: "3.4", Label: "Medición de resistencia de tierra", Status: "⚠️ Regular", Value: "4.2 Ω", Observation: "Alta"},
	}
	if diff := cmp.Diff(want, tierra.Rows); diff != "" {
		t.Errorf("rows mismatch (-want +got):\n%s", diff)
	}
}

func TestFormSectionOmission(t *testing.T) {
	data := map[string]any{"formData": map[string]any{
		"tipoTorre":   "",
		"alturaTorre": nil,
		"fotoTorre":   "data:image/png;base64,AAA",
		"calle":       "5a Avenida",
	}}
	sm := Build(formschema.Maintenance, data, registry)
	assert.False(t, sm.Has("torre"))

	dir, ok := sm.Get("direccion")
	require.True(t, ok)
	assert.Equal(t, []FieldValue{{Label: "Calle", Value: "5a Avenida"}}, dir.Fields)
}

func TestFormFieldTypes(t *testing.T) {
	sm := Build(formschema.Maintenance, map[string]any{"formData": map[string]any{
		"condicionTorre": "bueno",
		"alturaTorre":    30.0,
		"numSecciones":   "__photo__",
		"fotoTorre":      "__photo__",
	}}, registry)
	torre, ok := sm.Get("torre")
	require.True(t, ok)
	assert.Equal(t, []FieldValue{
		{Label: "Altura de la torre (m)", Value: "30"},
		{Label: "Condición de la torre", Value: "✅ Bueno"},
		{Label: "Número de secciones", Value: UploadedPhoto},
	}, torre.Fields)

	safety := Build(formschema.Safety, map[string]any{"herrajes": map[string]any{"oxidacion": true}}, registry)
	herrajes, ok := safety.Get("herrajes")
	require.True(t, ok)
	v, _ := herrajes.Value("¿Presenta oxidación?")
	assert.Equal(t, "Sí", v)
}

func TestGroundingComputedSection(t *testing.T) {
	medicion := map[string]any{}
	for i, v := range []float64{1.8, 2.1, 2.4, 1.6, 1.9, 2.2, 2.3} {
		medicion[formschema.GroundingResistanceFields[i]] = v
	}
	sm := Build(formschema.Grounding, map[string]any{"medicion": medicion}, registry)

	res, ok := sm.Get("resultado")
	require.True(t, ok)
	assert.Equal(t, "🧮 Resultado de la Prueba", res.Title)
	avg, _ := res.Value("Resistencia promedio RG (Ω)")
	assert.Equal(t, "2.04", avg)
	sum, _ := res.Value("Suma de resistencias (Ω)")
	assert.Equal(t, "14.3", sum)

	med, ok := sm.Get("medicion")
	require.True(t, ok)
	assert.Len(t, med.Fields, 7)

	partial := Build(formschema.Grounding, map[string]any{"medicion": map[string]any{"rPataTorre": 1.0}}, registry)
	assert.False(t, partial.Has("resultado"))
}

func TestEquipmentTables(t *testing.T) {
	data := map[string]any{
		"siteInfo": map[string]any{"nombreSitio": "Cerro", "zona": "Norte", "notas": ""},
		"torre": map[string]any{"items": []any{
			map[string]any{"alturaMts": 30.0, "tipoEquipo": "RF", "cantidad": 2.0, "areaM2": 0.5},
			map[string]any{"alturaMts": "", "tipoEquipo": ""},
			"junk",
		}},
		"piso": map[string]any{"clientes": []any{
			map[string]any{"tipoCliente": "Claro", "nombreCliente": "Claro GT"},
			map[string]any{"tipoCliente": "Tigo"},
		}},
	}
	sm := Build(formschema.Equipment, data, registry)

	sitio, ok := sm.Get("sitio")
	require.True(t, ok)
	assert.Equal(t, []FieldValue{
		{Label: "Nombre del sitio", Value: "Cerro"},
		{Label: "Zona", Value: "Norte"},
	}, sitio.Fields)

	torre, ok := sm.Get("torre")
	require.True(t, ok)
	require.NotNil(t, torre.Table)
	assert.Equal(t, KindTable, torre.Kind)
	assert.Len(t, torre.Table.Rows, 1)
	assert.Equal(t, []string{"30", "", "RF", "2", "", "0.5", ""}, torre.Table.Rows[0])

	piso, ok := sm.Get("piso")
	require.True(t, ok)
	assert.Equal(t, "#", piso.Table.Columns[0])
	assert.Equal(t, []string{"2", "Tigo", "", "", "", ""}, piso.Table.Rows[1])

	resumen, ok := sm.Get("resumen")
	require.True(t, ok)
	v, _ := resumen.Value("Clientes en piso")
	assert.Equal(t, "2", v)

	// photo sections are never built
	assert.False(t, sm.Has("documentacion"))
}

func TestEquipmentMissingCollections(t *testing.T) {
	sm := Build(formschema.Equipment, map[string]any{"piso": map[string]any{}}, registry)
	assert.Equal(t, 0, sm.Len())
}

func TestGenericFallback(t *testing.T) {
	data := map[string]any{
		"currentStep":    3.0,
		"completedSteps": map[string]any{"a": true},
		"photos":         map[string]any{"x": "data:..."},
		"datos_finales":  map[string]any{"observacionFinal": "OK", "vacio": ""},
		"aPrimero":       map[string]any{"campo": 1.0},
		"escalar":        "x",
		"vacia":          map[string]any{"a": nil},
	}
	sm := Build(formschema.Generic, data, registry)

	require.Equal(t, 2, sm.Len())
	assert.Equal(t, []string{"📋 A Primero", "📋 Datos finales"}, sm.Titles())

	fin, ok := sm.Get("datos-finales")
	require.True(t, ok)
	assert.Equal(t, []FieldValue{{Label: "Observacion Final", Value: "OK"}}, fin.Fields)
}

func TestSectionMapOrderAndReplace(t *testing.T) {
	var sm SectionMap
	sm.Set(Section{ID: "a", Title: "A"})
	sm.Set(Section{ID: "b", Title: "B"})
	sm.Set(Section{ID: "a", Title: "A2"})

	assert.Equal(t, []string{"A2", "B"}, sm.Titles())
	got, ok := sm.ByTitle("B")
	require.True(t, ok)
	assert.Equal(t, "b", got.ID)

	b, err := sonic.Marshal(sm)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"a","title":"A2","kind":""},{"id":"b","title":"B","kind":""}]`, string(b))

	var back SectionMap
	require.NoError(t, sonic.Unmarshal(b, &back))
	assert.Equal(t, sm.Titles(), back.Titles())

	y, err := yaml.Marshal(sm)
	require.NoError(t, err)
	assert.Contains(t, string(y), "title: A2")

	var empty SectionMap
	b, err = sonic.Marshal(empty)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(b))
}

func TestGroundingKeepsUndeclaredData(t *testing.T) {
	sm := Build(formschema.Grounding, map[string]any{
		"medicion":     map[string]any{"rOtroPunto": 3.1},
		"conclusiones": map[string]any{"resultadoFinal": "Aprobado"},
		"datos":        map[string]any{"supervisor": "Ana"},
	}, registry)

	assert.Equal(t, []string{"📋 Datos del Sitio", "📏 Mediciones de Resistencia", "📋 Conclusiones"}, sm.Titles())

	med, _ := sm.Get("medicion")
	v, ok := med.Value("R Otro Punto")
	require.True(t, ok)
	assert.Equal(t, "3.1", v)

	datos, _ := sm.Get("datos")
	v, _ = datos.Value("Supervisor")
	assert.Equal(t, "Ana", v)

	concl, ok := sm.Get("conclusiones")
	require.True(t, ok)
	assert.Equal(t, []FieldValue{{Label: "Resultado Final", Value: "Aprobado"}}, concl.Fields)
}

func TestSafetyKeepsUndeclaredData(t *testing.T) {
	sm := Build(formschema.Safety, map[string]any{
		"herrajes":  map[string]any{"oxidacion": false, "marcaCable": "Acme"},
		"anclajes":  map[string]any{"estado": "bueno"},
		"photos":    map[string]any{"x": "y"},
		"escalera":  "no object",
		"completed": map[string]any{},
	}, registry)

	herrajes, ok := sm.Get("herrajes")
	require.True(t, ok)
	v, _ := herrajes.Value("Marca Cable")
	assert.Equal(t, "Acme", v)

	anclajes, ok := sm.Get("anclajes")
	require.True(t, ok)
	assert.Equal(t, "📋 Anclajes", anclajes.Title)
	assert.Equal(t, 2, sm.Len())
}

func TestAnchorlessPayloadsUseGenericWalk(t *testing.T) {
	sm := Build(formschema.Maintenance, map[string]any{
		"datos_finales": map[string]any{"observacionFinal": "OK"},
	}, registry)
	assert.Equal(t, []string{"📋 Datos finales"}, sm.Titles())
	assert.False(t, sm.Has("chk-sitio"))

	emptyPayload := Build(formschema.Inspection, map[string]any{}, registry)
	assert.Equal(t, 0, emptyPayload.Len())
	nilPayload := Build(formschema.Inspection, nil, registry)
	assert.Equal(t, 0, nilPayload.Len())

	legacy := Build(formschema.Inspection, map[string]any{
		"items":    "",
		"sitio":    map[string]any{"idSitio": "GT-1"},
		"siteInfo": nil,
	}, registry)
	assert.Equal(t, []string{"📋 Sitio"}, legacy.Titles())
}

func TestUnclaimedKeysFollowSchemaSections(t *testing.T) {
	sm := Build(formschema.Maintenance, map[string]any{
		"formData":   map[string]any{"idSitio": "X1"},
		"extraBlock": map[string]any{"nota": "revisar"},
		"datos":      map[string]any{"otro": "valor"},
	}, registry)

	list := sm.Sections()
	last := list[len(list)-1]
	assert.Equal(t, "extrablock", last.ID)
	assert.Equal(t, "📋 Extra Block", last.Title)

	// a key slugged onto a schema id gets its own suffixed section
	dup, ok := sm.Get("datos-2")
	require.True(t, ok)
	assert.Equal(t, []FieldValue{{Label: "Otro", Value: "valor"}}, dup.Fields)
	first, _ := sm.Get("datos")
	assert.Equal(t, "📋 Datos Generales", first.Title)
}

func TestGenericIDsStayUnique(t *testing.T) {
	sm := Build(formschema.Generic, map[string]any{
		"inicio":        map[string]any{"x": 1.0},
		"datos_finales": map[string]any{"x": 1.0},
		"datos-finales": map[string]any{"y": 2.0},
		"enviado_por":   map[string]any{"z": "a"},
	}, registry)

	var ids []string
	for _, s := range sm.Sections() {
		ids = append(ids, s.ID)
	}
	assert.Equal(t, []string{"datos-finales", "datos-finales-2", "enviado-por-2", "inicio-2"}, ids)

	a, _ := sm.Get("datos-finales")
	assert.Equal(t, []FieldValue{{Label: "Y", Value: "2"}}, a.Fields)
	b, _ := sm.Get("datos-finales-2")
	assert.Equal(t, []FieldValue{{Label: "X", Value: "1"}}, b.Fields)
}

func TestSectionMapMergeAppends(t *testing.T) {
	var sm, other SectionMap
	sm.Set(Section{ID: "a", Title: "A"})
	other.Set(Section{ID: "a", Title: "A from data"})
	other.Set(Section{ID: "b", Title: "B"})

	sm.Merge(other)
	assert.Equal(t, []string{"A", "A from data", "B"}, sm.Titles())
	got, ok := sm.Get("a-2")
	require.True(t, ok)
	assert.Equal(t, "A from data", got.Title)

	assert.Equal(t, "x-3", sm.Append(Section{ID: "x"}, map[string]bool{"x": true, "x-2": true}))
}
