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

package errors

import (
	"errors"
	"fmt"
)

// Common sentinel errors
var (
	// ErrKeyNotFound is matched by every *KeyNotFoundError.
	ErrKeyNotFound = errors.New("facteur: key not found")

	// ErrTypeResolution is matched by every *TypeResolutionError.
	ErrTypeResolution = errors.New("facteur: type not resolvable")

	// ErrTypeMismatch is matched by every *TypeMismatchError.
	ErrTypeMismatch = errors.New("facteur: unexpected object type")

	// ErrEmptyName is returned when a factory, trait or type identifier is empty.
	ErrEmptyName = errors.New("facteur: empty name provided")

	// ErrNilTrait is returned when a trait is declared without a callback.
	ErrNilTrait = errors.New("facteur: nil trait callback")

	// ErrNilConstructor is returned when a type is registered without a constructor.
	ErrNilConstructor = errors.New("facteur: nil constructor")

	// ErrConflictingType is returned when a type identifier is registered twice.
	ErrConflictingType = errors.New("facteur: conflicting type registration")
)

// Kinds of declarations reported by KeyNotFoundError.
const (
	KindFactory = "factory"
	KindTrait   = "trait"
)

// KeyNotFoundError reports a factory or trait name without a declaration.
type KeyNotFoundError struct {
	Kind string
	Name string
}

func (e *KeyNotFoundError) Error() string {
	return fmt.Sprintf("%s %q not declared", e.Kind, e.Name)
}

func (e *KeyNotFoundError) Is(target error) bool {
	return target == ErrKeyNotFound
}

// TypeResolutionError reports a factory whose type identifier is unknown.
type TypeResolutionError struct {
	Factory    string
	Identifier string
}

func (e *TypeResolutionError) Error() string {
	return fmt.Sprintf("factory %q: no type registered as %q", e.Factory, e.Identifier)
}

func (e *TypeResolutionError) Is(target error) bool {
	return target == ErrTypeResolution
}

// TypeMismatchError reports a built object of an unexpected dynamic type.
type TypeMismatchError struct {
	Want string
	Got  string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("built object is %s, want %s", e.Got, e.Want)
}

func (e *TypeMismatchError) Is(target error) bool {
	return target == ErrTypeMismatch
}

// NewKeyNotFoundError creates a new KeyNotFoundError
func NewKeyNotFoundError(kind, name string) error {
	return &KeyNotFoundError{Kind: kind, Name: name}
}

// NewTypeResolutionError creates a new TypeResolutionError
func NewTypeResolutionError(factory, identifier string) error {
	return &TypeResolutionError{Factory: factory, Identifier: identifier}
}

// NewTypeMismatchError creates a new TypeMismatchError
func NewTypeMismatchError(want, got string) error {
	return &TypeMismatchError{Want: want, Got: got}
}

// IsKeyNotFound checks if an error is a key not found error
func IsKeyNotFound(err error) bool {
	return errors.Is(err, ErrKeyNotFound)
}

// IsTypeResolution checks if an error is a type resolution error
func IsTypeResolution(err error) bool {
	return errors.Is(err, ErrTypeResolution)
}

// IsTypeMismatch checks if an error is a type mismatch error
func IsTypeMismatch(err error) bool {
	return errors.Is(err, ErrTypeMismatch)
}
