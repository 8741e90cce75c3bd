package affinity

// #region imports
import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// #endregion

// The matrix is persisted as nested JSON objects whose key order is
// significant: module and variant order drives tie-breaks, so encode and
// decode both preserve it. Struct-tag unmarshaling into Go maps would lose
// the order, hence the token-stream codec.

// #region encode

// MarshalJSON writes modules and variants in declared order and task scores
// in canonical task order.
func (m Matrix) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, mod := range m.Modules {
		if i > 0 {
			buf.WriteByte(',')
		}
		writeKey(&buf, mod.Name)
		buf.WriteByte('{')
		for j, v := range mod.Variants {
			if j > 0 {
				buf.WriteByte(',')
			}
			writeKey(&buf, v.Name)
			buf.WriteByte('{')
			first := true
			for _, tt := range TaskTypes {
				s, ok := v.Scores[tt]
				if !ok {
					continue
				}
				if !first {
					buf.WriteByte(',')
				}
				first = false
				writeKey(&buf, string(tt))
				buf.WriteString(strconv.FormatFloat(s, 'g', -1, 64))
			}
			buf.WriteByte('}')
		}
		buf.WriteByte('}')
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func writeKey(buf *bytes.Buffer, key string) {
	b, _ := json.Marshal(key)
	buf.Write(b)
	buf.WriteByte(':')
}

// #endregion encode

// #region decode

// UnmarshalJSON decodes the nested object form, keeping file key order as
// declaration order. Unknown task labels and out-of-range scores are schema
// violations and fail the decode.
func (m *Matrix) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	if err := expectDelim(dec, '{'); err != nil {
		return fmt.Errorf("matrix: %w", err)
	}

	var modules []Module
	for dec.More() {
		modName, err := readKey(dec)
		if err != nil {
			return fmt.Errorf("matrix module key: %w", err)
		}
		mod := Module{Name: modName}

		if err := expectDelim(dec, '{'); err != nil {
			return fmt.Errorf("module %q: %w", modName, err)
		}
		for dec.More() {
			varName, err := readKey(dec)
			if err != nil {
				return fmt.Errorf("module %q variant key: %w", modName, err)
			}
			v := Variant{Name: varName, Scores: make(TaskScores)}

			if err := expectDelim(dec, '{'); err != nil {
				return fmt.Errorf("variant %s/%s: %w", modName, varName, err)
			}
			for dec.More() {
				label, err := readKey(dec)
				if err != nil {
					return fmt.Errorf("variant %s/%s task key: %w", modName, varName, err)
				}
				tt, ok := ParseTaskType(label)
				if !ok {
					return fmt.Errorf("variant %s/%s: unknown task type %q", modName, varName, label)
				}
				tok, err := dec.Token()
				if err != nil {
					return fmt.Errorf("variant %s/%s score: %w", modName, varName, err)
				}
				num, ok := tok.(json.Number)
				if !ok {
					return fmt.Errorf("variant %s/%s task %s: score is not a number", modName, varName, tt)
				}
				f, err := num.Float64()
				if err != nil {
					return fmt.Errorf("variant %s/%s task %s: %w", modName, varName, tt, err)
				}
				if f < MinScore || f > MaxScore {
					return fmt.Errorf("variant %s/%s task %s: score %v outside [%v, %v]", modName, varName, tt, f, MinScore, MaxScore)
				}
				v.Scores[tt] = f
			}
			if err := expectDelim(dec, '}'); err != nil {
				return fmt.Errorf("variant %s/%s: %w", modName, varName, err)
			}
			mod.Variants = append(mod.Variants, v)
		}
		if err := expectDelim(dec, '}'); err != nil {
			return fmt.Errorf("module %q: %w", modName, err)
		}
		modules = append(modules, mod)
	}
	if err := expectDelim(dec, '}'); err != nil {
		return fmt.Errorf("matrix: %w", err)
	}

	m.Modules = modules
	return nil
}

func expectDelim(dec *json.Decoder, want rune) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	d, ok := tok.(json.Delim)
	if !ok || rune(d) != want {
		return fmt.Errorf("expected %q, got %v", want, tok)
	}
	return nil
}

func readKey(dec *json.Decoder) (string, error) {
	tok, err := dec.Token()
	if err != nil {
		return "", err
	}
	s, ok := tok.(string)
	if !ok {
		return "", fmt.Errorf("expected object key, got %v", tok)
	}
	return s, nil
}

// #endregion decode
