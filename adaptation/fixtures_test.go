package adaptation_test

import (
	"adaptation-engine/adaptation"
	"adaptation-engine/capability"
)

// Power plugs.
var (
	ukStandard    = capability.Named("UKStandard")
	euStandard    = capability.Named("EUStandard")
	japanStandard = capability.Named("JapanStandard")
	iraqStandard  = capability.Named("IraqStandard")
)

type ukPlug struct{}

type euPlug struct{}

type travelPlug struct {
	mode string
}

type ukToEU struct{ adaptation.Adapter }

type euToJapan struct{ adaptation.Adapter }

type japanToIraq struct{ adaptation.Adapter }

type euToIraq struct{ adaptation.Adapter }

type ukToJapan struct{ adaptation.Adapter }

type travelToEU struct{ adaptation.Adapter }

// Editors.
var (
	iEditor     = capability.Named("IEditor")
	iScriptable = capability.Named("IScriptable")
	iUndoable   = capability.Named("IUndoable")
	iPrintable  = capability.Named("IPrintable")
)

type fileType struct{}

type editor struct{}

type textEditor struct{ editor }

type fileTypeToEditor struct{ adaptation.Adapter }

type scriptableToUndoable struct{ adaptation.Adapter }

type editorToPrintable struct{ adaptation.Adapter }

type textEditorToPrintable struct{ adaptation.Adapter }

// Interface hierarchy.
var (
	iPrimate      = capability.Named("IPrimate")
	iHuman        = capability.Named("IHuman")
	iChild        = capability.Named("IChild")
	iIntermediate = capability.Named("IIntermediate")
	iTarget       = capability.Named("ITarget")

	iStart    = capability.Named("IStart")
	iGeneric  = capability.Named("IGeneric")
	iSpecific = capability.Named("ISpecific")
	iEnd      = capability.Named("IEnd")
)

type source struct{}

type start struct{}

type childToIntermediate struct{ adaptation.Adapter }

type humanToIntermediate struct{ adaptation.Adapter }

type primateToIntermediate struct{ adaptation.Adapter }

type intermediateToTarget struct{ adaptation.Adapter }

type startToSpecific struct{ adaptation.Adapter }

type genericToEnd struct{ adaptation.Adapter }

// newExampleTable declares the conformance of every fixture type.
func newExampleTable() *capability.Table {
	t := capability.NewTable()

	t.Provide(capability.TypeFor[ukPlug](), ukStandard)
	t.Provide(capability.TypeFor[euPlug](), euStandard)
	t.Provide(capability.TypeFor[ukToEU](), euStandard)
	t.Provide(capability.TypeFor[euToJapan](), japanStandard)
	t.Provide(capability.TypeFor[japanToIraq](), iraqStandard)
	t.Provide(capability.TypeFor[euToIraq](), iraqStandard)
	t.Provide(capability.TypeFor[ukToJapan](), japanStandard)
	t.Provide(capability.TypeFor[travelToEU](), euStandard)

	t.Provide(capability.TypeFor[fileTypeToEditor](), iEditor, iScriptable)
	t.Provide(capability.TypeFor[scriptableToUndoable](), iUndoable)
	mustDeclare(t, capability.TypeFor[editor]())
	mustDeclare(t, capability.TypeFor[textEditor](), capability.TypeFor[editor]())
	t.Provide(capability.TypeFor[editorToPrintable](), iPrintable)
	t.Provide(capability.TypeFor[textEditorToPrintable](), iPrintable)

	mustDeclare(t, iHuman, iPrimate)
	mustDeclare(t, iChild, iHuman)
	t.Provide(capability.TypeFor[source](), iChild)
	t.Provide(capability.TypeFor[childToIntermediate](), iIntermediate)
	t.Provide(capability.TypeFor[humanToIntermediate](), iIntermediate)
	t.Provide(capability.TypeFor[primateToIntermediate](), iIntermediate)
	t.Provide(capability.TypeFor[intermediateToTarget](), iTarget)

	mustDeclare(t, iSpecific, iGeneric)
	t.Provide(capability.TypeFor[start](), iStart)
	t.Provide(capability.TypeFor[startToSpecific](), iSpecific)
	t.Provide(capability.TypeFor[genericToEnd](), iEnd)

	return t
}

func mustDeclare(t *capability.Table, c capability.Capability, parents ...capability.Capability) {
	if err := t.Declare(c, parents...); err != nil {
		panic(err)
	}
}

func newExampleManager() *adaptation.Manager {
	cfg := adaptation.DefaultConfig()
	cfg.Model = newExampleTable()

	return adaptation.NewManager(cfg)
}

// wrap builds a factory returning mk(adaptee).
func wrap[T any](mk func(adaptation.Adapter) T) adaptation.Factory {
	return func(adaptee any) (any, error) {
		return mk(adaptation.Adapter{Adaptee: adaptee}), nil
	}
}

func mustRegister(m *adaptation.Manager, factory adaptation.Factory, from, to capability.Capability) *adaptation.Offer {
	offer, err := m.RegisterFactory(factory, from, to)
	if err != nil {
		panic(err)
	}

	return offer
}

// adapted unwraps one level of adaptation.
func adapted(v any) any {
	type unwrapper interface{ Adapted() any }

	if u, ok := v.(unwrapper); ok {
		return u.Adapted()
	}

	return nil
}
