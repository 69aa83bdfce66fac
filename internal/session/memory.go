package session

// Memory는 테스트용 in-memory Context 구현이다.
// 모든 변경과 호출을 기록하고 실제 세션은 건드리지 않는다.
type Memory struct {
	Vars        map[string]string
	Dir         string
	Funcs       map[string]string
	Invocations [][]string
}

var _ Context = (*Memory)(nil)

// NewMemory는 주어진 초기 변수로 Memory 세션을 생성한다.
func NewMemory(vars map[string]string) *Memory {
	m := &Memory{
		Vars:  make(map[string]string),
		Funcs: make(map[string]string),
	}
	for k, v := range vars {
		m.Vars[k] = v
	}
	return m
}

// GetVar는 변수 값을 반환한다.
func (m *Memory) GetVar(name string) string {
	return m.Vars[name]
}

// SetVar는 변수 값을 설정한다.
func (m *Memory) SetVar(name, value string) {
	m.Vars[name] = value
}

// ChangeDir는 작업 디렉토리를 기록한다.
func (m *Memory) ChangeDir(path string) {
	m.Dir = path
}

// DefineFunc는 함수 정의를 기록한다.
func (m *Memory) DefineFunc(name, body string) {
	m.Funcs[name] = body
}

// Invoke는 호출을 기록한다.
func (m *Memory) Invoke(words ...string) {
	call := make([]string, len(words))
	copy(call, words)
	m.Invocations = append(m.Invocations, call)
}
