// Package pathlist maintains ordered, duplicate-free, colon-delimited
// path variables (PATH, DK_NODE, MODULEPATH) in a session.
package pathlist

import (
	"os"
	"strings"

	"github.com/hbjs97/spenv/internal/session"
)

// Add는 콜론 구분 경로 변수 맨 앞에 newEntry를 삽입한다.
// 이미 같은 요소가 있거나 디렉토리가 디스크에 없으면 아무 것도 하지 않는다.
// 변수가 변경되었으면 true를 반환한다.
func Add(sess session.Context, name, newEntry string) bool {
	if newEntry == "" {
		return false
	}

	current := sess.GetVar(name)
	if Contains(current, newEntry) {
		return false
	}

	info, err := os.Stat(newEntry)
	if err != nil || !info.IsDir() {
		return false
	}

	if current == "" {
		sess.SetVar(name, newEntry)
	} else {
		sess.SetVar(name, newEntry+":"+current)
	}
	return true
}

// Contains는 콜론 구분 값에 entry가 완전한 요소로 존재하는지 확인한다.
// 부분 문자열 일치는 존재로 취급하지 않는다.
func Contains(value, entry string) bool {
	if value == "" {
		return false
	}
	for _, el := range strings.Split(value, ":") {
		if el == entry {
			return true
		}
	}
	return false
}

// Entries는 콜론 구분 값을 요소 목록으로 분해한다. 빈 요소는 제외한다.
func Entries(value string) []string {
	if value == "" {
		return nil
	}
	var out []string
	for _, el := range strings.Split(value, ":") {
		if el != "" {
			out = append(out, el)
		}
	}
	return out
}
