package shell

import (
	"fmt"

	"github.com/hoardlib/hoard/hashmap"
)

// command binds a command word to its handler and help line.
type command struct {
	name string
	help string
	run  func(*Shell)
}

// commands is the dispatch table; order here is the help listing order.
// The help handler is wired in init: cmdHelp ranges over this table, so
// naming it in the composite literal would make the initializer cyclic.
var commands = []command{
	{"help", "Print this help message", nil},
	{"print", "Print the entire hash map", (*Shell).cmdPrint},
	{"new", "Create a new hash map", (*Shell).cmdNew},
	{"insert", "Insert a new key-value pair into the hash map", (*Shell).cmdInsert},
	{"remove", "Remove a key-value pair from the hash map", (*Shell).cmdRemove},
	{"get", "Retrieve the value associated with a given key", (*Shell).cmdGet},
	{"contains", "Check if the hash map contains a given key", (*Shell).cmdContains},
	{"drop", "Delete the entire hash map", (*Shell).cmdDrop},
	{"len", "Print the number of items in the hash map", (*Shell).cmdLen},
	{"capacity", "Print the current capacity of the hash map", (*Shell).cmdCapacity},
	{"reserve", "Change the capacity of the hash map", (*Shell).cmdReserve},
	{"quit", "Exit the program", nil},
}

func init() {
	commands[0].run = (*Shell).cmdHelp
}

func (s *Shell) cmdHelp() {
	fmt.Fprintln(s.out, "Available commands:")
	for _, c := range commands {
		fmt.Fprintf(s.out, "  %-11s %s\n", c.name, c.help)
	}
}

func (s *Shell) cmdPrint() {
	m, ok := s.requireMap()
	if !ok {
		return
	}
	if m.Len() == 0 {
		s.log.Info("hash map is empty")
	} else {
		fmt.Fprintln(s.out, "Hash map:")
		for k, v := range m.All() {
			fmt.Fprintf(s.out, "  %s => %d\n", k, v)
		}
	}
	s.log.Debugf("cap: %d", m.Cap())
	s.log.Debugf("len: %d", m.Len())
}

func (s *Shell) cmdNew() {
	if s.m != nil {
		s.log.Error("hash map already exists")

		return
	}
	s.m = hashmap.NewStringMap[int]()
	s.log.Info("hash map created")
}

func (s *Shell) cmdDrop() {
	m, ok := s.requireMap()
	if !ok {
		return
	}
	if m.Len() > 0 {
		s.log.Debug("deleting items:")
		for k, v := range m.All() {
			s.log.Debugf("  %s => %d", k, v)
		}
	}
	s.m = nil
	s.log.Info("hash map deleted")
}

func (s *Shell) cmdInsert() {
	m, ok := s.requireMap()
	if !ok {
		return
	}
	key, ok := s.promptKey()
	if !ok {
		return
	}
	value, ok := s.promptInt("Enter value: ")
	if !ok {
		return
	}
	if err := m.Set(key, value); err != nil {
		s.log.Errorf("failed to insert item: %v", err)

		return
	}
	s.log.Info("item inserted")
}

func (s *Shell) cmdRemove() {
	m, ok := s.requireMap()
	if !ok {
		return
	}
	key, ok := s.promptKey()
	if !ok {
		return
	}
	value, err := m.Remove(key)
	if err != nil {
		s.log.Error("item not found")

		return
	}
	s.log.Infof("item removed (value = %d)", value)
}

func (s *Shell) cmdContains() {
	m, ok := s.requireMap()
	if !ok {
		return
	}
	key, ok := s.promptKey()
	if !ok {
		return
	}
	if m.Contains(key) {
		s.log.Info("key exists in hash map")
	} else {
		s.log.Warn("key does not exist in hash map")
	}
}

func (s *Shell) cmdGet() {
	m, ok := s.requireMap()
	if !ok {
		return
	}
	key, ok := s.promptKey()
	if !ok {
		return
	}
	value, found := m.Get(key)
	if !found {
		s.log.Error("key not found")

		return
	}
	s.log.Infof("value: %d", value)
}

func (s *Shell) cmdLen() {
	m, ok := s.requireMap()
	if !ok {
		return
	}
	fmt.Fprintf(s.out, "Number of items in hash map: %d\n", m.Len())
}

func (s *Shell) cmdCapacity() {
	m, ok := s.requireMap()
	if !ok {
		return
	}
	fmt.Fprintf(s.out, "Capacity of hash map: %d\n", m.Cap())
}

func (s *Shell) cmdReserve() {
	m, ok := s.requireMap()
	if !ok {
		return
	}
	capacity, ok := s.promptInt("Enter number of items to reserve space for: ")
	if !ok {
		return
	}
	if capacity < 0 {
		s.log.Error("capacity must be non-negative")

		return
	}
	if err := m.Reserve(capacity); err != nil {
		s.log.Errorf("failed to reserve space: %v", err)

		return
	}
	s.log.Info("space reserved")
}
