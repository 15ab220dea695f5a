package glang

import (
	"chessview/src/ui/gui/gbase/gassets"
	"encoding/json"
	"errors"
	"fmt"
)

type LangType int

const (
	EN LangType = iota
	RU
	ZZ
)

func LangTypeByString(lang string) LangType {
	switch lang {
	case "en":
		return EN
	case "ru":
		return RU
	default:
	}
	return ZZ
}

func (t LangType) String() string {
	switch t {
	case EN:
		return "en"
	case RU:
		return "ru"
	default:
	}
	return ""
}

type GUILangWorker struct {
	workdir string
	lang    LangType
	dict    map[string]string
}

func NewGUILangWorker(workdir string, lang string) (*GUILangWorker, error) {
	lw := &GUILangWorker{
		dict:    make(map[string]string),
		workdir: workdir,
	}
	t := LangTypeByString(lang)
	if t == ZZ {
		return nil, errors.New("unsupported lang")
	}
	if err := lw.SetLang(t); err != nil {
		return nil, err
	}
	return lw, nil
}

func (lw *GUILangWorker) SetLang(l LangType) error {
	data, err := gassets.ReadAsset(lw.workdir + "/" + l.String() + ".json")
	if err != nil {
		return err
	}
	dict := make(map[string]string)
	if err := json.Unmarshal(data, &dict); err != nil {
		return fmt.Errorf("error decode lang %v: %v", l, err)
	}
	lw.lang = l
	lw.dict = dict
	return nil
}

// key itself when missing
func (lw *GUILangWorker) T(key string) string {
	if v, ok := lw.dict[key]; ok {
		return v
	}
	return key
}
