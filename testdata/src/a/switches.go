package a

func classify(s string) int {
	//sorted:check
	switch s {
	case "alpha":
		return 1
	case "beta", "gamma":
		return 2
	default:
		return 0
	}
}

func grade(v any) int {
	//gosorted:check
	switch v.(type) {
	case bool:
		return 1
	case string:
		return 3
	case int: // want `int should sort before string`
		return 2
	default:
		return 0
	}
}

func lookup(s string) int {
	//sorted:check
	switch s {
	case "ant":
		return 1
	//sorted:ignore
	case "zebra":
		return 26
	case "bee":
		return 2
	}
	return 0
}

func numeric(n int) int {
	//sorted:check
	switch n {
	case 2: // want `unsupported by //sorted:check: int literal case expressions are not sortable`
		return 1
	case 1:
		return 2
	}
	return 0
}

func unchecked(s string) int {
	switch s {
	case "zebra":
		return 2
	case "ant":
		return 1
	}
	return 0
}
