package card

// Kind identifies one concrete grammar. Every Kind has exactly one row in
// the grammar table; init panics otherwise.
type Kind int

const (
	// cell options
	CellImp Kind = iota
	CellVol
	CellPwt
	CellExt
	CellFcl
	CellWwn
	CellDxc
	CellNonu
	CellPd
	CellTmp
	CellU
	CellTrcl
	CellLat
	CellFill
	CellElpt
	CellCosy
	CellBflcl
	CellUnc

	// surfaces
	SurfP
	SurfPx
	SurfPy
	SurfPz
	SurfSo
	SurfS
	SurfSx
	SurfSy
	SurfSz
	SurfCX
	SurfCY
	SurfCZ
	SurfCx
	SurfCy
	SurfCz
	SurfKX
	SurfKY
	SurfKZ
	SurfKx
	SurfKy
	SurfKz
	SurfSq
	SurfGq
	SurfTx
	SurfTy
	SurfTz
	SurfX
	SurfY
	SurfZ
	SurfBox
	SurfRpp
	SurfSph
	SurfRcc
	SurfRhp
	SurfHex
	SurfRec
	SurfTrc
	SurfEll
	SurfWed
	SurfArb

	// data cards
	DataMode
	DataNps
	DataCtme
	DataPrdmp
	DataPrint
	DataTalnp
	DataM
	DataMt
	DataMx
	DataTr
	DataTrStar
	DataImp
	DataVol
	DataArea
	DataPwt
	DataExt
	DataFcl
	DataElpt
	DataDxt
	DataF
	DataFStar
	DataFc
	DataE
	DataT
	DataC
	DataFm
	DataFs
	DataSd
	DataFq
	DataFt
	DataFu
	DataTf
	DataDd
	DataEm
	DataTm
	DataCm
	DataDe
	DataDf
	DataFmesh
	DataKcode
	DataKsrc
	DataKopts
	DataSdef
	DataSi
	DataSp
	DataSb
	DataPhys
	DataCut
	DataRand
	DataDbcn
	DataLost
	DataVoid
	DataNonu
	DataTotnu
	DataWwp
	DataWwe
	DataPtrac
	DataTmp
	DataThtme
	DataAct

	numKinds
)

func (k Kind) String() string {
	if k < 0 || k >= numKinds {
		return "<invalid kind>"
	}
	return table[k].Keyword
}

func (k Kind) Grammar() *Grammar {
	if k < 0 || k >= numKinds {
		return nil
	}
	return &table[k]
}

func (k Kind) Family() Family {
	if g := k.Grammar(); g != nil {
		return g.Family
	}
	return -1
}

// Kinds returns every Kind in table order.
func Kinds() []Kind {
	res := make([]Kind, numKinds)
	for i := range res {
		res[i] = Kind(i)
	}
	return res
}
