package base

import (
	"fmt"
	"strconv"
	"strings"
)

type arguments map[string]string

// parseArguments reads --name=value and bare --name switches.
func parseArguments(args []string, allowed ...string) (v arguments, err error) {
	v = make(arguments)
	for _, arg := range args {
		arg = strings.TrimSpace(arg)
		if arg == "" {
			continue
		}
		if strings.Index(arg, "--") != 0 {
			err = fmt.Errorf("afseed: unexpected argument %s", arg)
			return
		}
		name, value, _ := strings.Cut(arg[2:], "=")
		known := false
		for _, a := range allowed {
			if a == name {
				known = true
				break
			}
		}
		if !known {
			err = fmt.Errorf("afseed: unknown flag --%s", name)
			return
		}
		v[name] = strings.TrimSpace(value)
	}
	return
}

func (v arguments) has(name string) bool {
	_, ok := v[name]
	return ok
}

func (v arguments) positive(name string, def int) (n int, err error) {
	s, ok := v[name]
	if !ok || s == "" {
		n = def
		return
	}
	n, err = strconv.Atoi(s)
	if err != nil || n < 1 {
		err = fmt.Errorf("afseed: invalid --%s", name)
		return
	}
	return
}

func (v arguments) sizes(name string) (sizes []int, err error) {
	s := v[name]
	if s == "" {
		return
	}
	for _, item := range strings.Split(s, ",") {
		n, atoiErr := strconv.Atoi(strings.TrimSpace(item))
		if atoiErr != nil || n < 1 {
			err = fmt.Errorf("afseed: invalid --%s, %s is not a positive size", name, item)
			return
		}
		sizes = append(sizes, n)
	}
	return
}
