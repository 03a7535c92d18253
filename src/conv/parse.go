package conv

import (
	"regexp"
	"strconv"
	"strings"
)

var funcPattern = regexp.MustCompile(`^([a-z]+)\(([^()]*)\)$`)

// ParseColor parses a color expression. Accepted forms are RRGGBB with an
// optional #, rgb(r,g,b), cmyk(c,m,y,k), hls(h,l,s), hsl(h,s,l) and
// hsv(h,s,v). A trailing % on a number is ignored.
func ParseColor(str string) (RGB, error) {
	str = strings.ToLower(strings.TrimSpace(str))
	if IsValidHex(str) {
		return HexToRGB(str)
	}

	match := funcPattern.FindStringSubmatch(strings.Replace(str, " ", "", -1))
	if match == nil {
		return RGB{}, &FormatError{Input: str, Reason: "invalid color: " + str}
	}
	args, err := parseNumbers(match[2])
	if err != nil {
		return RGB{}, &FormatError{Input: str, Reason: "invalid color: " + str}
	}

	arity := func(n int) error {
		if len(args) != n {
			return &FormatError{Input: str, Reason: match[1] + " requires " + strconv.Itoa(n) + " values"}
		}
		return nil
	}

	switch match[1] {
	case "rgb":
		if err := arity(3); err != nil {
			return RGB{}, err
		}
		if err := checkRGB(args[0], args[1], args[2]); err != nil {
			return RGB{}, err
		}
		return RGB{args[0], args[1], args[2]}, nil
	case "cmyk":
		if err := arity(4); err != nil {
			return RGB{}, err
		}
		return CMYKToRGB(args[0], args[1], args[2], args[3])
	case "hls":
		if err := arity(3); err != nil {
			return RGB{}, err
		}
		return HLSToRGB(args[0], args[1], args[2])
	case "hsl":
		if err := arity(3); err != nil {
			return RGB{}, err
		}
		return HLSToRGB(args[0], args[2], args[1])
	case "hsv":
		if err := arity(3); err != nil {
			return RGB{}, err
		}
		return HSVToRGB(args[0], args[1], args[2]), nil
	}
	return RGB{}, &FormatError{Input: str, Reason: "unknown color model: " + match[1]}
}

func parseNumbers(str string) ([]int, error) {
	if len(str) == 0 {
		return nil, nil
	}
	tokens := strings.Split(str, ",")
	nums := make([]int, len(tokens))
	for i, token := range tokens {
		num, err := strconv.Atoi(strings.TrimSuffix(token, "%"))
		if err != nil {
			return nil, err
		}
		nums[i] = num
	}
	return nums, nil
}
