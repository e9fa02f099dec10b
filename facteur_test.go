/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package facteur_test

import (
	"bytes"
	"errors"
	"runtime"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/facteur"
	"dirpx.dev/facteur/apis"
	"dirpx.dev/facteur/config"
	"dirpx.dev/facteur/logger"
	ferrors "dirpx.dev/facteur/errors"
	"dirpx.dev/facteur/types"
)

// ---------------------- Fixtures ----------------------

type Foo struct {
	Args  []any
	Marks []string
}

type AdminUser struct {
	Name      string
	Confirmed bool
}

// Users and Posts are independent consumer types.
type Users struct{ facteur.Host[Users] }
type Posts struct{ facteur.Host[Posts] }

func newFoo(args ...any) (*Foo, error) { return &Foo{Args: args}, nil }

func newAdminUser(args ...any) (*AdminUser, error) {
	if len(args) != 1 {
		return nil, errors.New("admin user needs a name")
	}
	return &AdminUser{Name: args[0].(string)}, nil
}

func mark(name string) apis.Trait {
	return func(obj any) error {
		f := obj.(*Foo)
		f.Marks = append(f.Marks, name)
		return nil
	}
}

// setup resets the global state and registers the fixture types.
func setup(t *testing.T) {
	t.Helper()
	facteur.Reset()
	t.Cleanup(facteur.Reset)
	require.NoError(t, facteur.RegisterType(newFoo))
	require.NoError(t, facteur.RegisterType(newAdminUser))
}

type countingObserver struct {
	mu     sync.Mutex
	builds int
	traits int
}

func (o *countingObserver) ObserveBuild(string, time.Duration, error) {
	o.mu.Lock()
	o.builds++
	o.mu.Unlock()
}

func (o *countingObserver) ObserveTrait(string, error) {
	o.mu.Lock()
	o.traits++
	o.mu.Unlock()
}

// ---------------------- Tests ----------------------

func TestHost_FactoryRoundTrip(t *testing.T) {
	setup(t)
	var users Users
	opts := apis.Options{"foo": "bar"}

	_, err := users.Factory("foo", opts, func(...any) {})
	require.NoError(t, err)

	def := users.FactoriesDictionary()["foo"]
	require.NotNil(t, def)
	assert.Equal(t, "foo", def.Name())
	assert.Equal(t, opts, def.Options())
	assert.NotNil(t, def.Customizer())
}

func TestHost_TraitRoundTrip(t *testing.T) {
	setup(t)
	var users Users

	require.NoError(t, users.Trait("foo_trait", mark("x")))
	assert.Contains(t, users.TraitsDictionary(), "foo_trait")
	assert.Len(t, users.TraitsDictionary(), 1)
}

func TestHost_Build(t *testing.T) {
	setup(t)
	var users Users
	_, _ = users.Factory("foo", apis.Options{"foo": "bar"}, nil)

	obj, err := users.Build("foo")
	require.NoError(t, err)
	assert.IsType(t, &Foo{}, obj)

	_, _ = users.Factory("admin_user", nil, nil)
	admin, err := facteur.As[*AdminUser](users.Build("admin_user", "alice"))
	require.NoError(t, err)
	assert.Equal(t, "alice", admin.Name)
}

func TestHost_BuildMissing(t *testing.T) {
	setup(t)

	_, err := Users{}.Build("missing")
	var knf *ferrors.KeyNotFoundError
	require.True(t, errors.As(err, &knf))
	assert.Equal(t, "missing", knf.Name)
}

func TestHost_Traits(t *testing.T) {
	setup(t)
	var users Users
	_, _ = users.Factory("foo", nil, nil)
	require.NoError(t, users.Trait("a", mark("a")))
	require.NoError(t, users.Trait("b", mark("b")))

	foo, err := facteur.As[*Foo](users.Traits("b", "a").Build("foo"))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, foo.Marks)

	foo, err = facteur.As[*Foo](users.Traits("b").Build("foo"))
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, foo.Marks)

	foo, err = facteur.As[*Foo](users.Traits("nonexistent").Build("foo"))
	require.NoError(t, err)
	assert.Empty(t, foo.Marks)
}

func TestHost_IndependentRegistries(t *testing.T) {
	setup(t)
	var users Users
	var posts Posts

	_, _ = users.Factory("foo", nil, nil)
	require.NoError(t, users.Trait("a", mark("a")))

	_, err := posts.Build("foo")
	assert.True(t, ferrors.IsKeyNotFound(err))
	assert.Empty(t, posts.TraitsDictionary())

	_, _ = posts.Factory("foo", apis.Options{"owner": "posts"}, nil)
	assert.Empty(t, users.FactoriesDictionary()["foo"].Options())
	assert.Equal(t, "posts", posts.FactoriesDictionary()["foo"].Options()["owner"])
}

func TestFor_PointerAndValueShareRegistry(t *testing.T) {
	setup(t)

	assert.Same(t, facteur.For[Users](), facteur.For[*Users]())
	assert.Same(t, facteur.For[Users](), Users{}.Registry())
	assert.NotSame(t, facteur.For[Users](), facteur.For[Posts]())
}

func TestFor_ConcurrentFirstUse(t *testing.T) {
	setup(t)

	workers := runtime.GOMAXPROCS(0) * 4
	got := make([]apis.Registry, workers)
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(i int) {
			defer wg.Done()
			got[i] = facteur.For[Posts]()
		}(w)
	}
	wg.Wait()

	for _, reg := range got[1:] {
		assert.Same(t, got[0], reg)
	}
}

func TestHost_Redeclaration(t *testing.T) {
	setup(t)
	var users Users

	_, _ = users.Factory("foo", apis.Options{"v": 1}, nil)
	_, err := users.Factory("foo", apis.Options{"v": 2}, nil)
	require.NoError(t, err)

	assert.Len(t, users.FactoriesDictionary(), 1)
	assert.Equal(t, 2, users.FactoriesDictionary()["foo"].Options()["v"])
}

func TestTypeResolution(t *testing.T) {
	setup(t)
	var users Users
	_, _ = users.Factory("ghost", nil, nil)

	_, err := users.Build("ghost")
	var tre *ferrors.TypeResolutionError
	require.True(t, errors.As(err, &tre))
	assert.Equal(t, "Ghost", tre.Identifier)

	require.NoError(t, facteur.RegisterConstructor("Ghost", func(...any) (any, error) { return "boo", nil }))
	obj, err := users.Build("ghost")
	require.NoError(t, err)
	assert.Equal(t, "boo", obj)
}

func TestRegisterType_Conflict(t *testing.T) {
	setup(t)

	assert.ErrorIs(t, facteur.RegisterType(newFoo), ferrors.ErrConflictingType)
	assert.Panics(t, func() { facteur.MustRegisterType(newFoo) })
	assert.Equal(t, 2, facteur.Types().Count())
}

func TestSetConfig_MigratesDeclarations(t *testing.T) {
	setup(t)
	var users Users
	_, _ = users.Factory("Foo", nil, nil)
	require.NoError(t, users.Trait("Shiny", mark("shiny")))

	_, err := users.Build("foo")
	require.True(t, ferrors.IsKeyNotFound(err), "case-sensitive before SetConfig")

	before := facteur.For[Users]()
	facteur.SetConfig(config.NewConfig(config.WithFoldCase(true), config.WithStrictTraits(true)))
	assert.True(t, facteur.Config().FoldCase)
	assert.Same(t, before, facteur.For[Users](), "SetConfig reconfigures in place")
	assert.True(t, before.Config().FoldCase)

	foo, err := facteur.As[*Foo](users.Traits("shiny").Build("FOO"))
	require.NoError(t, err)
	assert.Equal(t, []string{"shiny"}, foo.Marks)

	_, err = users.Traits("dull").Build("foo")
	assert.True(t, ferrors.IsKeyNotFound(err), "strict traits after SetConfig")
}

func TestSetObserver(t *testing.T) {
	setup(t)
	var users Users
	_, _ = users.Factory("foo", nil, nil)
	require.NoError(t, users.Trait("a", mark("a")))

	obs := &countingObserver{}
	facteur.SetObserver(obs)

	_, err := users.Traits("a").Build("foo")
	require.NoError(t, err)
	assert.Equal(t, 1, obs.builds)
	assert.Equal(t, 1, obs.traits)

	facteur.SetObserver(nil)
	_, _ = users.Build("foo")
	assert.Equal(t, 1, obs.builds)
}

func TestSetLogger_NilFallsBackToNop(t *testing.T) {
	setup(t)
	var users Users
	_, _ = users.Factory("foo", nil, nil)

	facteur.SetLogger(nil)
	_, err := users.Build("foo")
	assert.NoError(t, err)
}

func TestReset(t *testing.T) {
	setup(t)
	var users Users
	_, _ = users.Factory("foo", nil, nil)
	facteur.SetConfig(config.NewConfig(config.WithFoldCase(true)))

	facteur.Reset()

	assert.Empty(t, users.FactoriesDictionary())
	assert.Equal(t, 0, facteur.Types().Count())
	assert.Equal(t, config.DefaultConfig(), facteur.Config())
}

func TestAs(t *testing.T) {
	boom := errors.New("boom")

	foo, err := facteur.As[*Foo](&Foo{}, nil)
	require.NoError(t, err)
	assert.NotNil(t, foo)

	_, err = facteur.As[*AdminUser](&Foo{}, nil)
	assert.True(t, ferrors.IsTypeMismatch(err))
	assert.EqualError(t, err, "built object is *facteur_test.Foo, want *facteur_test.AdminUser")

	_, err = facteur.As[*Foo](nil, boom)
	assert.Same(t, boom, err)

	// A failing trait still hands back the object built so far.
	foo, err = facteur.As[*Foo](&Foo{Marks: []string{"a"}}, boom)
	assert.Same(t, boom, err)
	assert.Equal(t, []string{"a"}, foo.Marks)

	_, err = facteur.As[*AdminUser](&Foo{}, boom)
	assert.Same(t, boom, err)
}

func TestFailFastWithoutRollback(t *testing.T) {
	setup(t)
	var users Users
	boom := errors.New("boom")
	_, _ = users.Factory("foo", nil, nil)
	require.NoError(t, users.Trait("a", mark("a")))
	require.NoError(t, users.Trait("broken", func(any) error { return boom }))
	require.NoError(t, users.Trait("c", mark("c")))

	foo, err := facteur.As[*Foo](users.Traits("a", "broken", "c").Build("foo"))
	assert.Same(t, boom, err)
	assert.Equal(t, []string{"a"}, foo.Marks)
}

func TestTypesHelpersWithGlobalTable(t *testing.T) {
	setup(t)
	type Plain struct{}
	require.NoError(t, facteur.RegisterType(types.Zero[Plain]()))

	var posts Posts
	_, _ = posts.Factory("plain", nil, nil)
	obj, err := posts.Build("plain")
	require.NoError(t, err)
	assert.IsType(t, &Plain{}, obj)
}

func TestGetVersionInfo(t *testing.T) {
	info := facteur.GetVersionInfo()
	assert.Equal(t, facteur.Version, info.Version)
	assert.Equal(t, facteur.GitCommit, info.GitCommit)
	assert.NotEmpty(t, info.Version)
}

func TestSetObserver_KeepsRegistryHandle(t *testing.T) {
	setup(t)
	reg := facteur.For[Users]()

	obs := &countingObserver{}
	facteur.SetObserver(obs)
	assert.Same(t, reg, facteur.For[Users]())

	_, err := reg.DeclareFactory("foo", nil, nil)
	require.NoError(t, err)
	assert.Contains(t, Users{}.FactoriesDictionary(), "foo", "declaration on an earlier handle stays visible")

	_, err = reg.Build("foo")
	require.NoError(t, err)
	assert.Equal(t, 1, obs.builds, "earlier handles report to the new observer")
}

func TestSetLogger_KeepsRegistryHandle(t *testing.T) {
	setup(t)
	reg := facteur.For[Posts]()

	var buf bytes.Buffer
	facteur.SetLogger(logger.NewZerologLoggerWithWriter("facteur", &buf))
	assert.Same(t, reg, facteur.For[Posts]())

	_, err := reg.DeclareFactory("foo", nil, nil)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "factory declared")
	assert.Contains(t, Posts{}.FactoriesDictionary(), "foo")
}
