package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/paperbase/paperbase/internal/domain/compound"
	"github.com/paperbase/paperbase/internal/repository"
)

func newCompoundRepo(t *testing.T) (*CompoundRepository, *PaperRepository, *ProjectDB) {
	t.Helper()
	pdb := NewTestProjectDB(t)
	return NewCompoundRepository(pdb), NewPaperRepository(pdb), pdb
}

func TestCompoundCreateAndGet(t *testing.T) {
	compounds, papers, _ := newCompoundRepo(t)
	ctx := context.Background()

	pdfID := insertPaper(t, papers, "Host", []byte("pdf"))

	c := &compound.Compound{
		PDFID:  pdfID,
		SMILES: "CC(=O)Oc1ccccc1C(=O)O",
		InChI:  "InChI=1S/C9H8O4/c1-6(10)13-8-5-3-2-4-7(8)9(11)12/h2-5H,1H3,(H,11,12)",
		Image:  "data:image/png;base64,iVBOR",
		ChemicalData: map[string]any{
			"pce":   float64(18.2),
			"notes": "aspirin control",
		},
	}
	require.NoError(t, compounds.Create(ctx, c))
	require.NotZero(t, c.ID)

	got, err := compounds.Get(ctx, c.ID)
	require.NoError(t, err)
	require.Equal(t, pdfID, got.PDFID)
	require.Equal(t, c.SMILES, got.SMILES)
	require.Equal(t, c.InChI, got.InChI)
	require.Equal(t, c.Image, got.Image)
	require.Equal(t, float64(18.2), got.ChemicalData["pce"])
	require.Equal(t, "aspirin control", got.ChemicalData["notes"])
}

func TestCompoundCreateUnknownPaper(t *testing.T) {
	compounds, _, _ := newCompoundRepo(t)

	c := &compound.Compound{PDFID: 9999, SMILES: "CCO"}
	err := compounds.Create(context.Background(), c)
	require.ErrorIs(t, err, repository.ErrForeignKeyViolation)
}

func TestCompoundNilChemicalData(t *testing.T) {
	compounds, papers, _ := newCompoundRepo(t)
	ctx := context.Background()

	pdfID := insertPaper(t, papers, "Host", []byte("pdf"))

	c := &compound.Compound{PDFID: pdfID, SMILES: "CCO"}
	require.NoError(t, compounds.Create(ctx, c))

	got, err := compounds.Get(ctx, c.ID)
	require.NoError(t, err)
	require.Empty(t, got.ChemicalData)
}

func TestCompoundListForPaper(t *testing.T) {
	compounds, papers, _ := newCompoundRepo(t)
	ctx := context.Background()

	first := insertPaper(t, papers, "First", []byte("a"))
	second := insertPaper(t, papers, "Second", []byte("b"))

	for _, smiles := range []string{"CCO", "CCN"} {
		require.NoError(t, compounds.Create(ctx, &compound.Compound{PDFID: first, SMILES: smiles}))
	}
	require.NoError(t, compounds.Create(ctx, &compound.Compound{PDFID: second, SMILES: "c1ccccc1"}))

	list, err := compounds.ListForPaper(ctx, first)
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, "CCO", list[0].SMILES)

	list, err = compounds.ListForPaper(ctx, second)
	require.NoError(t, err)
	require.Len(t, list, 1)
}

func TestCompoundUpdate(t *testing.T) {
	compounds, papers, _ := newCompoundRepo(t)
	ctx := context.Background()

	pdfID := insertPaper(t, papers, "Host", []byte("pdf"))

	c := &compound.Compound{PDFID: pdfID, SMILES: "CCO"}
	require.NoError(t, compounds.Create(ctx, c))

	c.SMILES = "CCN"
	c.ChemicalData = map[string]any{"pce": float64(3)}
	require.NoError(t, compounds.Update(ctx, c))

	got, err := compounds.Get(ctx, c.ID)
	require.NoError(t, err)
	require.Equal(t, "CCN", got.SMILES)
	require.Equal(t, float64(3), got.ChemicalData["pce"])
}

func TestCompoundUpdateNotFound(t *testing.T) {
	compounds, papers, _ := newCompoundRepo(t)
	ctx := context.Background()

	pdfID := insertPaper(t, papers, "Host", []byte("pdf"))

	err := compounds.Update(ctx, &compound.Compound{ID: 777, PDFID: pdfID, SMILES: "CCO"})
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestCompoundDelete(t *testing.T) {
	compounds, papers, _ := newCompoundRepo(t)
	ctx := context.Background()

	pdfID := insertPaper(t, papers, "Host", []byte("pdf"))

	c := &compound.Compound{PDFID: pdfID, SMILES: "CCO"}
	require.NoError(t, compounds.Create(ctx, c))

	require.NoError(t, compounds.Delete(ctx, c.ID))

	_, err := compounds.Get(ctx, c.ID)
	require.ErrorIs(t, err, repository.ErrNotFound)

	err = compounds.Delete(ctx, c.ID)
	require.ErrorIs(t, err, repository.ErrNotFound)
}
