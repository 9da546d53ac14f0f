package extract

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ccxstat/internal/dat"
	apperrors "ccxstat/internal/errors"
)

// fixture with uniaxial stress states so the Mises values equal the sxx
// column: 10, 20, 30.
const fullDat = ` stresses (elem, integ.pnt.,sxx,syy,szz,sxy,sxz,syz) for set EALL and time  0.1000000E+01

         1   1  1.000000E+01  0.000000E+00  0.000000E+00  0.000000E+00  0.000000E+00  0.000000E+00
         1   2  2.000000E+01  0.000000E+00  0.000000E+00  0.000000E+00  0.000000E+00  0.000000E+00
         2   1  3.000000E+01  0.000000E+00  0.000000E+00  0.000000E+00  0.000000E+00  0.000000E+00

 strains (elem, integ.pnt.,exx,eyy,ezz,exy,exz,eyz) for set EALL and time  0.1000000E+01

         1   1  3.000000E-03  0.000000E+00  0.000000E+00  0.000000E+00  0.000000E+00  0.000000E+00
         1   2  6.000000E-03  0.000000E+00  0.000000E+00  0.000000E+00  0.000000E+00  0.000000E+00
         2   1  9.000000E-03  0.000000E+00  0.000000E+00  0.000000E+00  0.000000E+00  0.000000E+00

 equivalent plastic strain for set EALL and time  0.1000000E+01

         1   1  0.000000E+00
         1   2  1.000000E-04
         2   1  2.000000E-04
`

const stressOnlyDat = ` stresses (elem, integ.pnt.,sxx,syy,szz,sxy,sxz,syz) for set EALL and time  0.1000000E+01

         1   1  1.000000E+01  0.000000E+00  0.000000E+00  0.000000E+00  0.000000E+00  0.000000E+00
`

func writeFixture(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "job.dat")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestService_Extract_AllQuantities(t *testing.T) {
	svc := NewService(nil, 4)
	path := writeFixture(t, fullDat)

	rep, err := svc.Extract(context.Background(), Request{
		InputPath:  path,
		Quantities: []dat.Quantity{dat.QuantityMises, dat.QuantityEEQ, dat.QuantityPEEQ},
	})
	require.NoError(t, err)
	require.Len(t, rep.Results, 3)
	require.Len(t, rep.Rows, 3)

	mises := rep.Results[0]
	assert.Equal(t, dat.QuantityMises, mises.Quantity)
	assert.InDelta(t, 10.0, mises.Summary.Min, 1e-9)
	assert.InDelta(t, 30.0, mises.Summary.Max, 1e-9)
	assert.InDelta(t, 20.0, mises.Summary.Mean, 1e-9)
	assert.Equal(t, 3, mises.Summary.Count)

	// Uniaxial strain of exx scales by two thirds.
	eeq := rep.Results[1]
	assert.Equal(t, dat.QuantityEEQ, eeq.Quantity)
	assert.InDelta(t, 2.0e-3, eeq.Summary.Min, 1e-12)
	assert.InDelta(t, 6.0e-3, eeq.Summary.Max, 1e-12)

	peeq := rep.Results[2]
	assert.Equal(t, dat.QuantityPEEQ, peeq.Quantity)
	assert.InDelta(t, 0.0, peeq.Summary.Min, 1e-12)
	assert.InDelta(t, 2.0e-4, peeq.Summary.Max, 1e-12)
	assert.InDelta(t, 1.0e-4, peeq.Summary.Mean, 1e-12)
}

func TestService_Extract_CanonicalOrder(t *testing.T) {
	svc := NewService(nil, 4)
	path := writeFixture(t, fullDat)

	rep, err := svc.Extract(context.Background(), Request{
		InputPath:  path,
		Quantities: []dat.Quantity{dat.QuantityPEEQ, dat.QuantityMises},
	})
	require.NoError(t, err)
	require.Len(t, rep.Results, 2)
	assert.Equal(t, dat.QuantityMises, rep.Results[0].Quantity)
	assert.Equal(t, dat.QuantityPEEQ, rep.Results[1].Quantity)
}

func TestService_Extract_MissingQuantity(t *testing.T) {
	svc := NewService(nil, 4)
	path := writeFixture(t, stressOnlyDat)

	_, err := svc.Extract(context.Background(), Request{
		InputPath:  path,
		Quantities: []dat.Quantity{dat.QuantityMises, dat.QuantityPEEQ},
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeMissingData))
	assert.Contains(t, err.Error(), "Equivalent plastic strain")
}

func TestService_Extract_MissingInput(t *testing.T) {
	svc := NewService(nil, 4)

	_, err := svc.Extract(context.Background(), Request{
		InputPath:  filepath.Join(t.TempDir(), "absent.dat"),
		Quantities: []dat.Quantity{dat.QuantityMises},
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeIO))
}

func TestService_Extract_EmptyRequest(t *testing.T) {
	svc := NewService(nil, 4)

	_, err := svc.Extract(context.Background(), Request{})
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeValidation))
}

func TestService_Extract_SingleRow(t *testing.T) {
	svc := NewService(nil, 4)
	path := writeFixture(t, stressOnlyDat)

	rep, err := svc.Extract(context.Background(), Request{
		InputPath:  path,
		Quantities: []dat.Quantity{dat.QuantityMises},
	})
	require.NoError(t, err)
	require.Len(t, rep.Results, 1)

	s := rep.Results[0].Summary
	assert.Equal(t, 1, s.Count)
	assert.InDelta(t, 10.0, s.Min, 1e-9)
	assert.Equal(t, s.Min, s.Max)
	assert.Equal(t, s.Min, s.Mean)
}

func TestService_ExtractAndWrite(t *testing.T) {
	svc := NewService(nil, 4)
	path := writeFixture(t, fullDat)

	rep, err := svc.Extract(context.Background(), Request{
		InputPath:  path,
		Quantities: []dat.Quantity{dat.QuantityMises, dat.QuantityEEQ, dat.QuantityPEEQ},
	})
	require.NoError(t, err)

	outPath := DefaultOutputPath(path)
	require.NoError(t, svc.Write(rep, outPath, "txt"))

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	content := string(data)
	assert.Contains(t, content, "MISES")
	assert.Contains(t, content, "Mean (arith.)")
	assert.Contains(t, content, "Mises equivalent stress: min=1.0000e+01 max=3.0000e+01 mean=2.0000e+01")
	assert.Contains(t, content, "Total effective strain: min=2.0000e-03 max=6.0000e-03 mean=4.0000e-03")
	assert.Contains(t, content, "Equivalent plastic strain: min=0.0000e+00 max=2.0000e-04 mean=1.0000e-04")
}

func TestDefaultOutputPath(t *testing.T) {
	assert.Equal(t, "runs/job_IntPtOutput.txt", DefaultOutputPath("runs/job.dat"))
	assert.Equal(t, "job_IntPtOutput.txt", DefaultOutputPath("job.dat"))
}
