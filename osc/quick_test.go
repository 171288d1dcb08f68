package osc

import (
	"math/rand"
	"reflect"
)

// Generators for testing/quick.

var segmentAlphabet = func() []byte {
	var b []byte
	for c := byte(0x20); c <= 0x7E; c++ {
		if !isReserved(c) {
			b = append(b, c)
		}
	}
	return b
}()

func randSegment(rand *rand.Rand) string {
	b := make([]byte, 1+rand.Intn(8))
	for i := range b {
		b[i] = segmentAlphabet[rand.Intn(len(segmentAlphabet))]
	}
	return string(b)
}

func (Address) Generate(rand *rand.Rand, size int) reflect.Value {
	var path []string
	for i := rand.Intn(min(size, 5) + 1); i > 0; i-- {
		path = append(path, randSegment(rand))
	}
	a, err := NewAddress(path, randSegment(rand))
	if err != nil {
		panic(err)
	}
	return reflect.ValueOf(a)
}

func (Tag) Generate(rand *rand.Rand, _ int) reflect.Value {
	tags := []Tag{TypeInt32, TypeFloat32, TypeString, TypeBlob}
	return reflect.ValueOf(tags[rand.Intn(len(tags))])
}

func (DynamicString) Generate(rand *rand.Rand, size int) reflect.Value {
	b := make([]byte, rand.Intn(size+1))
	for i := range b {
		b[i] = byte(1 + rand.Intn(0x7F))
	}
	return reflect.ValueOf(DynamicString{s: string(b)})
}

func (DynamicBlob) Generate(rand *rand.Rand, size int) reflect.Value {
	b := make([]byte, rand.Intn(size+1))
	rand.Read(b)
	return reflect.ValueOf(DynamicBlob{b: b})
}

func (Values) Generate(rand *rand.Rand, size int) reflect.Value {
	vs := make(Values, rand.Intn(9))
	for i := range vs {
		switch Tag(0).Generate(rand, size).Interface().(Tag) {
		case TypeInt32:
			vs[i] = NewDynamic(Int32(rand.Int31() - rand.Int31()))
		case TypeFloat32:
			vs[i] = NewDynamic(Float32(rand.NormFloat64()))
		case TypeString:
			vs[i] = NewDynamic(DynamicString{}.Generate(rand, size).Interface().(DynamicString))
		case TypeBlob:
			vs[i] = NewDynamic(DynamicBlob{}.Generate(rand, size).Interface().(DynamicBlob))
		}
	}
	return reflect.ValueOf(vs)
}
