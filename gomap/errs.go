package gomap

import "errors"

var ErrStructTag = errors.New("bad treeml struct tag")
