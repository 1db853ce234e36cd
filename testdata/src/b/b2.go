package b

//sorted:check

func alpha() {}

func zeta() {}

func Beta() { alpha(); zeta() } // want `Beta should sort before alpha`
